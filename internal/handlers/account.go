package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

// AccountDeleter removes a user with everything the user owns.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// NewDeleteAccountHandler returns an HTTP handler deleting the caller's account.
// @Summary Delete account
// @Description Removes all stored files, materials, quizzes, submissions, progress and the user.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /account [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteAccount(r.Context(), userID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account deleted"})
	}
}
