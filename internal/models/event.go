package models

// Event operations published to the event stream.
const (
	OperationMaterialUploaded = "material.uploaded"
	OperationMaterialDeleted  = "material.deleted"
	OperationQuizGenerated    = "quiz.generated"
	OperationQuizSubmitted    = "quiz.submitted"
	OperationAccountDeleted   = "account.deleted"
)

// Event represents a domain event, including the acting user, the affected resource and the operation.
type Event struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID     string `json:"user_id"`     // UserID is the identifier of the user who caused the event.
	ResourceID string `json:"resource_id"` // ResourceID identifies the material, quiz or account affected.
	Operation  string `json:"operation"`   // Operation is one of the Operation* constants.
}
