package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRepositories(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	writeRepo := NewMaterialWriteRepository(db, nil)
	readRepo := NewMaterialReadRepository(db)

	pages := 3
	description := "chapter one"
	first := &models.MaterialDB{
		MaterialID:  uuid.New(),
		UserID:      alice.UserID,
		Title:       "notes.pdf",
		Description: &description,
		FilePath:    "uploads/a_notes.pdf",
		FileType:    models.FileTypePDF,
		FileSize:    1024,
		Pages:       &pages,
		CreatedAt:   time.Now().UTC().Add(-time.Minute),
		UpdatedAt:   time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, writeRepo.Save(ctx, first))
	second := seedMaterial(t, db, alice.UserID, "second")
	seedMaterial(t, db, bob.UserID, "bobs")

	t.Run("ListByUserID", func(t *testing.T) {
		materials, err := readRepo.ListByUserID(ctx, alice.UserID)
		require.NoError(t, err)
		require.Len(t, materials, 2)
		assert.Equal(t, first.MaterialID, materials[0].MaterialID)
		assert.Equal(t, second.MaterialID, materials[1].MaterialID)

		require.NotNil(t, materials[0].Pages)
		assert.Equal(t, 3, *materials[0].Pages)
		require.NotNil(t, materials[0].Description)
		assert.Equal(t, "chapter one", *materials[0].Description)
		assert.Nil(t, materials[1].Pages)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		materials, err := readRepo.ListByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, materials)
		assert.Empty(t, materials)
	})

	t.Run("GetByIDAndUserID", func(t *testing.T) {
		got, err := readRepo.GetByIDAndUserID(ctx, first.MaterialID, alice.UserID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "uploads/a_notes.pdf", got.FilePath)
		assert.Equal(t, int64(1024), got.FileSize)
	})

	t.Run("GetForeignOwner", func(t *testing.T) {
		got, err := readRepo.GetByIDAndUserID(ctx, first.MaterialID, bob.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		quiz := seedQuiz(t, db, alice.UserID, second.MaterialID)
		require.NoError(t, NewSubmissionRepository(db, nil).Save(ctx, &models.SubmissionDB{
			SubmissionID: uuid.New(),
			QuizID:       quiz.QuizID,
			UserID:       alice.UserID,
			Answers:      models.AnswerList{0},
			Score:        0,
			SubmittedAt:  time.Now().UTC(),
		}))
		_, err := NewProgressRepository(db, nil).Upsert(ctx, &models.ProgressDB{
			ProgressID:   uuid.New(),
			UserID:       alice.UserID,
			MaterialID:   second.MaterialID,
			LastAccessed: time.Now().UTC(),
			CreatedAt:    time.Now().UTC(),
		})
		require.NoError(t, err)

		require.NoError(t, writeRepo.Delete(ctx, second.MaterialID))

		got, err := readRepo.GetByIDAndUserID(ctx, second.MaterialID, alice.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 0, countRows(t, db, "quizzes"))
		assert.Equal(t, 0, countRows(t, db, "submissions"))
		assert.Equal(t, 0, countRows(t, db, "progress"))
		assert.Equal(t, 2, countRows(t, db, "materials"))
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		assert.ErrorIs(t, writeRepo.Delete(ctx, uuid.New()), ErrNotFound)
	})
}
