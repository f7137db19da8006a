package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthService handles registration, login and token checks.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenManager) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a user and returns its id together with a fresh token.
// Username is checked before email.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (uuid.UUID, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return uuid.Nil, "", err
	}
	if user != nil {
		logger.Log.Infow("username already exists", "username", username)
		return uuid.Nil, "", ErrDuplicateUsername
	}

	user, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return uuid.Nil, "", err
	}
	if user != nil {
		logger.Log.Infow("email already exists", "email", email)
		return uuid.Nil, "", ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, "", err
	}

	now := time.Now().UTC()
	user = &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// a concurrent registration may win the race between check and insert
	if err := svc.writer.Save(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameTaken):
			return uuid.Nil, "", ErrDuplicateUsername
		case errors.Is(err, repositories.ErrEmailTaken):
			return uuid.Nil, "", ErrDuplicateEmail
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return uuid.Nil, "", err
	}

	return user.UserID, token, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if !VerifyPassword(user, password) {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate resolves a token to the id of an existing user.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (uuid.UUID, error) {
	userID, err := svc.jwt.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Infow("token rejected", "err", err)
		return uuid.Nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		logger.Log.Infow("token for unknown user", "user_id", userID)
		return uuid.Nil, ErrUnauthorized
	}

	return userID, nil
}

// Refresh verifies tokenString and issues a new token for the same user.
func (svc *AuthService) Refresh(ctx context.Context, tokenString string) (string, error) {
	userID, err := svc.Authenticate(ctx, tokenString)
	if err != nil {
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// VerifyPassword reports whether candidate matches the stored hash.
func VerifyPassword(user *models.UserDB, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}
