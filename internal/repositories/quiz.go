package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/models"
)

const quizColumns = `quiz_id, user_id, material_id, title, description, questions, created_at, updated_at`

// QuizRepository stores generated quizzes.
type QuizRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewQuizRepository(db *sqlx.DB, txGetter TxGetter) *QuizRepository {
	return &QuizRepository{db: db, txGetter: txGetter}
}

// Save inserts a new quiz.
func (r *QuizRepository) Save(ctx context.Context, q *models.QuizDB) error {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		INSERT INTO quizzes (quiz_id, user_id, material_id, title, description, questions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	args := []any{q.QuizID, q.UserID, q.MaterialID, q.Title, q.Description, q.Questions, q.CreatedAt, q.UpdatedAt}

	_, err := ex.ExecContext(ctx, query, args...)

	logQuery(query, []any{q.QuizID, q.UserID, q.MaterialID, len(q.Questions)}, nil, err)

	return err
}

// GetByIDAndUserID returns the quiz when it exists and belongs to userID, nil otherwise.
func (r *QuizRepository) GetByIDAndUserID(ctx context.Context, quizID, userID uuid.UUID) (*models.QuizDB, error) {
	query := r.db.Rebind(`SELECT ` + quizColumns + ` FROM quizzes WHERE quiz_id = ? AND user_id = ?`)

	var quiz models.QuizDB
	err := r.db.GetContext(ctx, &quiz, query, quizID, userID)

	logQuery(query, []any{quizID, userID}, len(quiz.Questions), err)

	if err != nil {
		return nil, noRows(err)
	}
	return &quiz, nil
}

// ListByUserID returns the user's quizzes, newest first.
func (r *QuizRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.QuizDB, error) {
	query := r.db.Rebind(`SELECT ` + quizColumns + ` FROM quizzes WHERE user_id = ? ORDER BY created_at DESC, quiz_id`)

	quizzes := []models.QuizDB{}
	err := r.db.SelectContext(ctx, &quizzes, query, userID)

	logQuery(query, []any{userID}, len(quizzes), err)

	return quizzes, err
}
