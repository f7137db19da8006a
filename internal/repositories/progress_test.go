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

func TestProgressRepository(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	material := seedMaterial(t, db, alice.UserID, "notes")

	repo := NewProgressRepository(db, nil)
	now := time.Now().UTC()

	first, err := repo.Upsert(ctx, &models.ProgressDB{
		ProgressID:           uuid.New(),
		UserID:               alice.UserID,
		MaterialID:           material.MaterialID,
		PagesRead:            2,
		TimeSpent:            60,
		CompletionPercentage: 20,
		LastAccessed:         now,
		CreatedAt:            now,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, first.TimeSpent)

	second, err := repo.Upsert(ctx, &models.ProgressDB{
		ProgressID:           uuid.New(),
		UserID:               alice.UserID,
		MaterialID:           material.MaterialID,
		PagesRead:            5,
		TimeSpent:            30,
		CompletionPercentage: 50,
		LastAccessed:         now.Add(time.Minute),
		CreatedAt:            now.Add(time.Minute),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ProgressID, second.ProgressID, "row is updated in place")
	assert.Equal(t, 5, second.PagesRead)
	assert.Equal(t, 90, second.TimeSpent)
	assert.Equal(t, 50.0, second.CompletionPercentage)

	items, err := repo.ListByUserID(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, material.MaterialID, items[0].MaterialID)

	_, err = repo.Upsert(ctx, &models.ProgressDB{
		ProgressID:   uuid.New(),
		UserID:       alice.UserID,
		MaterialID:   uuid.New(),
		LastAccessed: now,
		CreatedAt:    now,
	})
	assert.Error(t, err, "foreign key on material_id")
}
