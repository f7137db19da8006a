package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/repositories"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=services

// ErrUserNotFound is returned when the account to delete does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserDeleter removes a user and all owned rows.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AccountService deletes accounts with everything they own.
type AccountService struct {
	materials MaterialReader
	storage   ArtifactStorage
	users     UserDeleter
	publisher Publisher
}

func NewAccountService(materials MaterialReader, storage ArtifactStorage, users UserDeleter, publisher Publisher) *AccountService {
	return &AccountService{
		materials: materials,
		storage:   storage,
		users:     users,
		publisher: publisher,
	}
}

// DeleteAccount removes the stored artifacts of every material, then the
// user with all dependent rows.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	materials, err := s.materials.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list materials", "user_id", userID, "error", err)
		return err
	}

	for _, m := range materials {
		if err := s.storage.Delete(ctx, m.FilePath); err != nil {
			logger.Log.Errorw("failed to delete artifact", "path", m.FilePath, "error", err)
			return err
		}
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
		return err
	}

	s.publisher.Publish(ctx, userID, userID, models.OperationAccountDeleted)

	return nil
}
