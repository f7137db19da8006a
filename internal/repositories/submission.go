package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/models"
)

// SubmissionRepository stores quiz attempts.
type SubmissionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSubmissionRepository(db *sqlx.DB, txGetter TxGetter) *SubmissionRepository {
	return &SubmissionRepository{db: db, txGetter: txGetter}
}

// Save inserts a submission.
func (r *SubmissionRepository) Save(ctx context.Context, s *models.SubmissionDB) error {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		INSERT INTO submissions (submission_id, quiz_id, user_id, answers, score, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	args := []any{s.SubmissionID, s.QuizID, s.UserID, s.Answers, s.Score, s.SubmittedAt}

	_, err := ex.ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return err
}

// ListByQuizID returns the attempts at quizID, oldest first.
func (r *SubmissionRepository) ListByQuizID(ctx context.Context, quizID uuid.UUID) ([]models.SubmissionDB, error) {
	query := r.db.Rebind(`
		SELECT submission_id, quiz_id, user_id, answers, score, submitted_at
		FROM submissions WHERE quiz_id = ? ORDER BY submitted_at, submission_id
	`)

	submissions := []models.SubmissionDB{}
	err := r.db.SelectContext(ctx, &submissions, query, quizID)

	logQuery(query, []any{quizID}, len(submissions), err)

	return submissions, err
}
