package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
)

//go:generate mockgen -source=progress.go -destination=mock_progress.go -package=services

// ErrInvalidProgress is returned for negative pages or time.
var ErrInvalidProgress = errors.New("pages read and time spent must not be negative")

// ProgressRepository stores reading progress.
type ProgressRepository interface {
	Upsert(ctx context.Context, progress *models.ProgressDB) (*models.ProgressDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProgressDB, error)
}

// ProgressService records how far users got through their materials.
type ProgressService struct {
	materials MaterialReader
	repo      ProgressRepository
}

func NewProgressService(materials MaterialReader, repo ProgressRepository) *ProgressService {
	return &ProgressService{materials: materials, repo: repo}
}

// Record stores pages read and completion and adds timeSpent seconds to the
// cumulative total. Completion is clamped to 0-100.
func (s *ProgressService) Record(
	ctx context.Context,
	userID, materialID uuid.UUID,
	pagesRead, timeSpent int,
	completion float64,
) (*models.ProgressDB, error) {
	if pagesRead < 0 || timeSpent < 0 {
		return nil, ErrInvalidProgress
	}

	material, err := s.materials.GetByIDAndUserID(ctx, materialID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get material", "material_id", materialID, "error", err)
		return nil, err
	}
	if material == nil {
		return nil, ErrMaterialNotFound
	}

	now := time.Now().UTC()
	progress, err := s.repo.Upsert(ctx, &models.ProgressDB{
		ProgressID:           uuid.New(),
		UserID:               userID,
		MaterialID:           materialID,
		PagesRead:            pagesRead,
		TimeSpent:            timeSpent,
		CompletionPercentage: ClampPercentage(completion),
		LastAccessed:         now,
		CreatedAt:            now,
	})
	if err != nil {
		logger.Log.Errorw("failed to record progress", "material_id", materialID, "error", err)
		return nil, err
	}
	return progress, nil
}

// List returns the user's progress records.
func (s *ProgressService) List(ctx context.Context, userID uuid.UUID) ([]models.ProgressDB, error) {
	items, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list progress", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}

// ClampPercentage limits p to the range 0-100.
func ClampPercentage(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
