package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (uuid.UUID, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,max=80"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=120"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// JWT token
	Token string `json:"token"`

	// Id of the created user
	UserID uuid.UUID `json:"user_id"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and returns a session token. Username is checked for uniqueness before email.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields / Username already exists / Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		userID, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateUsername):
				writeError(w, http.StatusBadRequest, "Username already exists")
			case errors.Is(err, services.ErrDuplicateEmail):
				writeError(w, http.StatusBadRequest, "Email already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{Token: token, UserID: userID})
	}
}
