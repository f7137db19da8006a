package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(userID, "token-1", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"token": "token-1", "user_id": userID.String()},
		},
		{
			name:         "missing fields",
			body:         `{"username":"john","password":"secret"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name:         "invalid email",
			body:         `{"username":"john","email":"nope","password":"secret"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid email"},
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","email":"alice@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass").
					Return(uuid.Nil, "", services.ErrDuplicateUsername)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Username already exists"},
		},
		{
			name: "duplicate email",
			body: `{"username":"alice","email":"alice@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass").
					Return(uuid.Nil, "", services.ErrDuplicateEmail)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Email already exists"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass").
					Return(uuid.Nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "jwt-token"},
		},
		{
			name:         "missing credentials",
			body:         `{"username":"john"}`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Missing credentials"},
		},
		{
			name: "invalid credentials",
			body: `{"username":"john","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Invalid username or password"},
		},
		{
			name: "internal error",
			body: `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockRefreshTokener(ctrl)
	mockSvc := NewMockRefresher(ctrl)
	handler := NewRefreshHandler(mockTokener, mockSvc)

	t.Run("success", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("old", nil)
		mockSvc.EXPECT().Refresh(gomock.Any(), "old").Return("new", nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"token":"new"}`, rr.Body.String())
	})

	t.Run("no header", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing"))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
	})

	t.Run("user gone", func(t *testing.T) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("old", nil)
		mockSvc.EXPECT().Refresh(gomock.Any(), "old").Return("", services.ErrUnauthorized)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountDeleter(ctrl)
	handler := NewDeleteAccountHandler(mockSvc)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().DeleteAccount(gomock.Any(), userID).Return(nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodDelete, "/api/account", nil), userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Account deleted"}`, rr.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.EXPECT().DeleteAccount(gomock.Any(), userID).Return(errors.New("io"))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodDelete, "/api/account", nil), userID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/account", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}
