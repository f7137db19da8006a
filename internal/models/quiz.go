package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// Question is a single multiple choice question.
type Question struct {
	Question      string   `json:"question"`       // Question text
	Options       []string `json:"options"`        // Exactly four answer options
	CorrectAnswer int      `json:"correct_answer"` // Index of the correct option, 0-3
}

// Valid reports whether the question has text, four options and an in-range answer.
func (q Question) Valid() bool {
	return q.Question != "" &&
		len(q.Options) == OptionsPerQuestion &&
		q.CorrectAnswer >= 0 && q.CorrectAnswer < OptionsPerQuestion
}

// QuestionList is an ordered sequence of questions stored as a JSON column.
type QuestionList []Question

// Value implements driver.Valuer.
func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		l = QuestionList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *QuestionList) Scan(src any) error {
	return scanJSON(src, l)
}

// QuizDB represents a generated quiz row in the database
type QuizDB struct {
	QuizID      uuid.UUID    `json:"id" db:"quiz_id"`              // Primary key
	UserID      uuid.UUID    `json:"user_id" db:"user_id"`         // Owner of the quiz
	MaterialID  uuid.UUID    `json:"material_id" db:"material_id"` // Source material
	Title       string       `json:"title" db:"title"`             // Display title
	Description *string      `json:"description" db:"description"` // Optional description
	Questions   QuestionList `json:"questions" db:"questions"`     // Ordered questions
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
}
