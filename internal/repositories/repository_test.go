package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/database"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens a migrated sqlite database in a temporary directory.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	url := "sqlite:///" + filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(context.Background(), url, 1, 1)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedUser(t *testing.T, db *sqlx.DB, username string) *models.UserDB {
	t.Helper()

	now := time.Now().UTC()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, NewUserWriteRepository(db, nil).Save(context.Background(), user))
	return user
}

func seedMaterial(t *testing.T, db *sqlx.DB, userID uuid.UUID, title string) *models.MaterialDB {
	t.Helper()

	now := time.Now().UTC()
	material := &models.MaterialDB{
		MaterialID: uuid.New(),
		UserID:     userID,
		Title:      title,
		FilePath:   "uploads/" + title + ".txt",
		FileType:   models.FileTypeTXT,
		FileSize:   42,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, NewMaterialWriteRepository(db, nil).Save(context.Background(), material))
	return material
}

func seedQuiz(t *testing.T, db *sqlx.DB, userID, materialID uuid.UUID) *models.QuizDB {
	t.Helper()

	now := time.Now().UTC()
	quiz := &models.QuizDB{
		QuizID:     uuid.New(),
		UserID:     userID,
		MaterialID: materialID,
		Title:      "Quiz",
		Questions: models.QuestionList{
			{Question: "2+2?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 3},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewQuizRepository(db, nil).Save(context.Background(), quiz))
	return quiz
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
