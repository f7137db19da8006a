package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnswerList is the ordered list of option indices chosen by a user.
type AnswerList []int

// Value implements driver.Valuer.
func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *AnswerList) Scan(src any) error {
	return scanJSON(src, l)
}

// SubmissionDB represents a single quiz attempt
type SubmissionDB struct {
	SubmissionID uuid.UUID  `json:"id" db:"submission_id"`          // Primary key
	QuizID       uuid.UUID  `json:"quiz_id" db:"quiz_id"`           // Attempted quiz
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`           // User who submitted
	Answers      AnswerList `json:"answers" db:"answers"`           // Chosen option per question
	Score        float64    `json:"score" db:"score"`               // Percentage of correct answers, 0-100
	SubmittedAt  time.Time  `json:"submitted_at" db:"submitted_at"` // Submission timestamp
}
