package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/models"
)

const userColumns = `user_id, username, email, password_hash, created_at, updated_at`

// UserReadRepository looks users up by their unique keys.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getBy(ctx, "username", username)
}

// GetByEmail returns the user with email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getBy(ctx, "email", email)
}

// GetByID returns the user with id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return r.getBy(ctx, "user_id", userID)
}

func (r *UserReadRepository) getBy(ctx context.Context, column string, value any) (*models.UserDB, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ? LIMIT 1`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, value)

	logQuery(query, []any{value}, user.UserID, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &user, nil
}

// UserWriteRepository creates and deletes users.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts user. Unique violations are translated to ErrUsernameTaken or ErrEmailTaken.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	ex := executor(ctx, r.db, r.txGetter)
	query := ex.Rebind(`
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := ex.ExecContext(ctx, query,
		user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	// the password hash is never logged
	logQuery(query, []any{user.UserID, user.Username, user.Email}, nil, err)

	switch {
	case uniqueViolation(err, "users", "username"):
		return ErrUsernameTaken
	case uniqueViolation(err, "users", "email"):
		return ErrEmailTaken
	}
	return err
}

// Delete removes the user and everything the user owns, dependents first.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		err := execAll(ctx, ex, []statement{
			{`DELETE FROM submissions WHERE user_id = ? OR quiz_id IN (SELECT quiz_id FROM quizzes WHERE user_id = ?)`, []any{userID, userID}},
			{`DELETE FROM progress WHERE user_id = ?`, []any{userID}},
			{`DELETE FROM quizzes WHERE user_id = ?`, []any{userID}},
			{`DELETE FROM materials WHERE user_id = ?`, []any{userID}},
		})
		if err != nil {
			return err
		}

		query := ex.Rebind(`DELETE FROM users WHERE user_id = ?`)
		res, err := ex.ExecContext(ctx, query, userID)
		logQuery(query, []any{userID}, nil, err)
		if err != nil {
			return err
		}
		return rowsAffected(res)
	})
}
