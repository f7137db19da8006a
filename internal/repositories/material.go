package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/models"
)

const materialColumns = `material_id, user_id, title, description, file_path, file_type, file_size, pages, created_at, updated_at`

// MaterialReadRepository handles material read operations
type MaterialReadRepository struct {
	db *sqlx.DB
}

func NewMaterialReadRepository(db *sqlx.DB) *MaterialReadRepository {
	return &MaterialReadRepository{db: db}
}

// ListByUserID returns the user's materials, oldest first.
func (r *MaterialReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MaterialDB, error) {
	query := r.db.Rebind(`SELECT ` + materialColumns + ` FROM materials WHERE user_id = ? ORDER BY created_at, material_id`)

	materials := []models.MaterialDB{}
	err := r.db.SelectContext(ctx, &materials, query, userID)

	logQuery(query, []any{userID}, len(materials), err)

	return materials, err
}

// GetByIDAndUserID returns the material when it exists and belongs to userID, nil otherwise.
func (r *MaterialReadRepository) GetByIDAndUserID(ctx context.Context, materialID, userID uuid.UUID) (*models.MaterialDB, error) {
	query := r.db.Rebind(`SELECT ` + materialColumns + ` FROM materials WHERE material_id = ? AND user_id = ?`)

	var material models.MaterialDB
	err := r.db.GetContext(ctx, &material, query, materialID, userID)

	logQuery(query, []any{materialID, userID}, material.FilePath, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &material, nil
}

// MaterialWriteRepository handles material write operations
type MaterialWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMaterialWriteRepository(db *sqlx.DB, txGetter TxGetter) *MaterialWriteRepository {
	return &MaterialWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new material row.
func (r *MaterialWriteRepository) Save(ctx context.Context, m *models.MaterialDB) error {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		INSERT INTO materials (material_id, user_id, title, description, file_path, file_type, file_size, pages, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	args := []any{m.MaterialID, m.UserID, m.Title, m.Description, m.FilePath, m.FileType, m.FileSize, m.Pages, m.CreatedAt, m.UpdatedAt}

	_, err := ex.ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return err
}

// Delete removes the material with its submissions, quizzes and progress.
// Returns ErrNotFound when the material row does not exist.
func (r *MaterialWriteRepository) Delete(ctx context.Context, materialID uuid.UUID) error {
	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		err := execAll(ctx, ex, []statement{
			{`DELETE FROM submissions WHERE quiz_id IN (SELECT quiz_id FROM quizzes WHERE material_id = ?)`, []any{materialID}},
			{`DELETE FROM quizzes WHERE material_id = ?`, []any{materialID}},
			{`DELETE FROM progress WHERE material_id = ?`, []any{materialID}},
		})
		if err != nil {
			return err
		}

		query := ex.Rebind(`DELETE FROM materials WHERE material_id = ?`)
		res, err := ex.ExecContext(ctx, query, materialID)
		logQuery(query, []any{materialID}, nil, err)
		if err != nil {
			return err
		}
		return rowsAffected(res)
	})
}
