package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/models"
)

const progressColumns = `progress_id, user_id, material_id, pages_read, time_spent, completion_percentage, last_accessed, created_at`

// ProgressRepository tracks reading progress per (user, material).
type ProgressRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProgressRepository(db *sqlx.DB, txGetter TxGetter) *ProgressRepository {
	return &ProgressRepository{db: db, txGetter: txGetter}
}

// Upsert creates the progress row or updates it in place: pages read and
// completion are replaced, time spent is accumulated. Returns the stored row.
func (r *ProgressRepository) Upsert(ctx context.Context, p *models.ProgressDB) (*models.ProgressDB, error) {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		INSERT INTO progress (progress_id, user_id, material_id, pages_read, time_spent, completion_percentage, last_accessed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, material_id)
		DO UPDATE SET pages_read = EXCLUDED.pages_read,
		              time_spent = progress.time_spent + EXCLUDED.time_spent,
		              completion_percentage = EXCLUDED.completion_percentage,
		              last_accessed = EXCLUDED.last_accessed
	`)
	args := []any{p.ProgressID, p.UserID, p.MaterialID, p.PagesRead, p.TimeSpent, p.CompletionPercentage, p.LastAccessed, p.CreatedAt}

	_, err := ex.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	if err != nil {
		return nil, err
	}

	selectQuery := ex.Rebind(`SELECT ` + progressColumns + ` FROM progress WHERE user_id = ? AND material_id = ?`)
	var stored models.ProgressDB
	err = sqlx.GetContext(ctx, ex, &stored, selectQuery, p.UserID, p.MaterialID)
	logQuery(selectQuery, []any{p.UserID, p.MaterialID}, stored.TimeSpent, err)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListByUserID returns the user's progress rows, most recently accessed first.
func (r *ProgressRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProgressDB, error) {
	query := r.db.Rebind(`SELECT ` + progressColumns + ` FROM progress WHERE user_id = ? ORDER BY last_accessed DESC, progress_id`)

	items := []models.ProgressDB{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logQuery(query, []any{userID}, len(items), err)

	return items, err
}
