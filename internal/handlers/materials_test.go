package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/materials/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, materialID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		filename     string
		fields       map[string]string
		mockSetup    func(m *MockMaterialIngester)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "success",
			filename: "notes.txt",
			fields:   map[string]string{"title": "Notes", "description": "week 1"},
			mockSetup: func(m *MockMaterialIngester) {
				m.EXPECT().
					Ingest(gomock.Any(), gomock.Any(), "notes.txt", userID, "Notes", gomock.Any()).
					DoAndReturn(func(_ any, file io.Reader, _ string, _ uuid.UUID, _ string, desc *string) (*models.MaterialDB, error) {
						data, _ := io.ReadAll(file)
						assert.Equal(t, "hello", string(data))
						require.NotNil(t, desc)
						assert.Equal(t, "week 1", *desc)
						return &models.MaterialDB{MaterialID: materialID, Title: "Notes", FileType: "txt"}, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"` + materialID.String() + `","title":"Notes","file_type":"txt"}`,
		},
		{
			name:         "no file part",
			mockSetup:    func(m *MockMaterialIngester) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"No file provided"}`,
		},
		{
			name:     "type not allowed",
			filename: "virus.exe",
			mockSetup: func(m *MockMaterialIngester) {
				m.EXPECT().Ingest(gomock.Any(), gomock.Any(), "virus.exe", userID, "", nil).
					Return(nil, services.ErrUnsupportedType)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"File type not allowed"}`,
		},
		{
			name:     "too large",
			filename: "big.pdf",
			mockSetup: func(m *MockMaterialIngester) {
				m.EXPECT().Ingest(gomock.Any(), gomock.Any(), "big.pdf", userID, "", nil).
					Return(nil, &services.TooLargeError{Limit: 50 << 20})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"File too large. Max size: 50MB"}`,
		},
		{
			name:     "storage failure",
			filename: "notes.txt",
			mockSetup: func(m *MockMaterialIngester) {
				m.EXPECT().Ingest(gomock.Any(), gomock.Any(), "notes.txt", userID, "", nil).
					Return(nil, errors.New("disk full"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMaterialIngester(ctrl)
			tt.mockSetup(mockSvc)

			req := authed(multipartRequest(t, tt.filename, []byte("hello"), tt.fields), userID)
			rr := httptest.NewRecorder()

			NewUploadHandler(mockSvc, 0).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUploadHandler_BodyOverLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMaterialIngester(ctrl)

	content := bytes.Repeat([]byte("a"), 1024+multipartOverhead)
	req := authed(multipartRequest(t, "big.txt", content, nil), uuid.New())
	rr := httptest.NewRecorder()

	NewUploadHandler(mockSvc, 1024).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"File too large. Max size: 0.0009765625MB"}`, rr.Body.String())
}

func TestListMaterialsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMaterialLister(ctrl)
	userID, materialID := uuid.New(), uuid.New()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mockSvc.EXPECT().List(gomock.Any(), userID).
		Return([]models.MaterialDB{{MaterialID: materialID, Title: "Notes", CreatedAt: created}}, nil)

	rr := httptest.NewRecorder()
	NewListMaterialsHandler(mockSvc).ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/api/materials", nil), userID))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`[{"id":"`+materialID.String()+`","title":"Notes","created_at":"2024-01-02T03:04:05Z"}]`,
		rr.Body.String())
}

func TestListMaterialsHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMaterialLister(ctrl)
	userID := uuid.New()
	mockSvc.EXPECT().List(gomock.Any(), userID).Return(nil, nil)

	rr := httptest.NewRecorder()
	NewListMaterialsHandler(mockSvc).ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/api/materials", nil), userID))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetMaterialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMaterialGetter(ctrl)
	handler := NewGetMaterialHandler(mockSvc)
	userID, materialID := uuid.New(), uuid.New()
	pages := 3

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), materialID, userID).
			Return(&models.MaterialDB{MaterialID: materialID, FilePath: "uploads/secret.pdf", FileType: "pdf", Pages: &pages}, nil)

		req := withParam(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "id", materialID.String())
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, float64(3), body["pages"])
		assert.NotContains(t, rr.Body.String(), "secret.pdf")
	})

	t.Run("not owned", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), materialID, userID).Return(nil, services.ErrMaterialNotFound)

		req := withParam(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "id", materialID.String())
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Material not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		req := withParam(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "id", "42")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteMaterialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMaterialDeleter(ctrl)
	handler := NewDeleteMaterialHandler(mockSvc)
	userID, materialID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "deleted", expectedCode: http.StatusOK},
		{name: "not found", err: services.ErrMaterialNotFound, expectedCode: http.StatusNotFound},
		{name: "failure", err: errors.New("io"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Delete(gomock.Any(), materialID, userID).Return(tt.err)

			req := withParam(authed(httptest.NewRequest(http.MethodDelete, "/", nil), userID), "id", materialID.String())
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
