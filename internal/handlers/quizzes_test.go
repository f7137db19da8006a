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
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testQuestions = models.QuestionList{
	{Question: "2+2?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 3},
}

func TestGenerateQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, materialID, quizID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockQuizGenerator)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "stored quiz",
			body: `{"material_id":"` + materialID.String() + `","num_questions":1}`,
			mockSetup: func(m *MockQuizGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, materialID, 1).
					Return(&models.QuizDB{QuizID: quizID, Questions: testQuestions}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				var resp GenerateQuizResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.NotNil(t, resp.QuizID)
				assert.Equal(t, quizID, *resp.QuizID)
				assert.Len(t, resp.Questions, 1)
			},
		},
		{
			name: "default count and empty result",
			body: `{"material_id":"` + materialID.String() + `"}`,
			mockSetup: func(m *MockQuizGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, materialID, services.DefaultQuizQuestions).
					Return(&models.QuizDB{}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"questions":[]}`, string(body))
			},
		},
		{
			name: "material not found",
			body: `{"material_id":"` + materialID.String() + `"}`,
			mockSetup: func(m *MockQuizGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, materialID, 5).Return(nil, services.ErrMaterialNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "unparseable",
			body: `{"material_id":"` + materialID.String() + `"}`,
			mockSetup: func(m *MockQuizGenerator) {
				m.EXPECT().Generate(gomock.Any(), userID, materialID, 5).Return(nil, services.ErrUnparseable)
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"error":"Could not parse file"}`, string(body))
			},
		},
		{
			name:         "missing material id",
			body:         `{}`,
			mockSetup:    func(m *MockQuizGenerator) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "too many questions",
			body:         `{"material_id":"` + materialID.String() + `","num_questions":500}`,
			mockSetup:    func(m *MockQuizGenerator) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuizGenerator(ctrl)
			tt.mockSetup(mockSvc)

			req := authed(httptest.NewRequest(http.MethodPost, "/api/quiz/generate", bytes.NewBufferString(tt.body)), userID)
			rr := httptest.NewRecorder()

			NewGenerateQuizHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}

func TestListAndGetQuizHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuizReader(ctrl)
	userID, quizID, materialID := uuid.New(), uuid.New(), uuid.New()
	quiz := models.QuizDB{QuizID: quizID, MaterialID: materialID, Title: "Bio Quiz", Questions: testQuestions}

	t.Run("list", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), userID).Return([]models.QuizDB{quiz}, nil)

		rr := httptest.NewRecorder()
		NewListQuizzesHandler(mockSvc).ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil), userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []QuizSummary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 1, resp[0].QuestionCount)
		assert.Equal(t, materialID, resp[0].MaterialID)
	})

	t.Run("get", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), userID, quizID).Return(&quiz, nil)

		req := withParam(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "id", quizID.String())
		rr := httptest.NewRecorder()
		NewGetQuizHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"title":"Bio Quiz"`)
	})

	t.Run("get missing", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), userID, quizID).Return(nil, services.ErrQuizNotFound)

		req := withParam(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "id", quizID.String())
		rr := httptest.NewRecorder()
		NewGetQuizHandler(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Quiz not found"}`, rr.Body.String())
	})
}

func TestListSubmissionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSubmissionLister(ctrl)
	userID, quizID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		param        string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "attempts",
			param: quizID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ListSubmissions(gomock.Any(), userID, quizID).Return([]models.SubmissionDB{
					{QuizID: quizID, UserID: userID, Answers: models.AnswerList{3}, Score: 100},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "no attempts",
			param: quizID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ListSubmissions(gomock.Any(), userID, quizID).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:  "foreign quiz",
			param: quizID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ListSubmissions(gomock.Any(), userID, quizID).Return(nil, services.ErrQuizNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Quiz not found"}`,
		},
		{
			name:         "malformed id",
			param:        "not-a-uuid",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Quiz not found"}`,
		},
		{
			name:  "store error",
			param: quizID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ListSubmissions(gomock.Any(), userID, quizID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withParam(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "id", tt.param)
			rr := httptest.NewRecorder()
			NewListSubmissionsHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				return
			}
			var resp []models.SubmissionDB
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Len(t, resp, 1)
			assert.Equal(t, float64(100), resp[0].Score)
			assert.Equal(t, models.AnswerList{3}, resp[0].Answers)
		})
	}
}

func TestSubmitQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, quizID, submissionID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockQuizSubmitter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "scored",
			body: `{"answers":[3,0]}`,
			mockSetup: func(m *MockQuizSubmitter) {
				m.EXPECT().Submit(gomock.Any(), userID, quizID, []int{3, 0}).
					Return(&models.SubmissionDB{SubmissionID: submissionID, Score: 50}, 1, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"submission_id":"` + submissionID.String() + `","score":50,"correct":1,"total":2}`,
		},
		{
			name: "count mismatch",
			body: `{"answers":[3]}`,
			mockSetup: func(m *MockQuizSubmitter) {
				m.EXPECT().Submit(gomock.Any(), userID, quizID, []int{3}).Return(nil, 0, services.ErrAnswerCountMismatch)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Answer count does not match question count"}`,
		},
		{
			name:         "option out of range",
			body:         `{"answers":[7]}`,
			mockSetup:    func(m *MockQuizSubmitter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid value for Answers[0]"}`,
		},
		{
			name: "quiz missing",
			body: `{"answers":[1]}`,
			mockSetup: func(m *MockQuizSubmitter) {
				m.EXPECT().Submit(gomock.Any(), userID, quizID, []int{1}).Return(nil, 0, services.ErrQuizNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Quiz not found"}`,
		},
		{
			name: "store failure",
			body: `{"answers":[1]}`,
			mockSetup: func(m *MockQuizSubmitter) {
				m.EXPECT().Submit(gomock.Any(), userID, quizID, []int{1}).Return(nil, 0, errors.New("db"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuizSubmitter(ctrl)
			tt.mockSetup(mockSvc)

			req := authed(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), userID)
			req = withParam(req, "id", quizID.String())
			rr := httptest.NewRecorder()

			NewSubmitQuizHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
