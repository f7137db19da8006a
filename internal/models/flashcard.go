package models

// Flashcard is a single front/back study card.
type Flashcard struct {
	Front string `json:"front"` // Prompt side
	Back  string `json:"back"`  // Answer side
}
