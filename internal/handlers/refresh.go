package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=refresh.go -destination=mock_refresh.go -package=handlers

// RefreshTokener extracts the bearer token of a request.
type RefreshTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Refresher exchanges a valid token for a new one.
type Refresher interface {
	Refresh(ctx context.Context, tokenString string) (string, error)
}

// NewRefreshHandler returns an HTTP handler that issues a new token for the bearer.
// @Summary Refresh token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
// @Security BearerAuth
func NewRefreshHandler(tokener RefreshTokener, svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		token, err := svc.Refresh(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
