package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=quizzes.go -destination=mock_quizzes.go -package=handlers

const msgQuizAbsent = "Quiz not found"

// QuizGenerator creates a quiz from an owned material.
type QuizGenerator interface {
	Generate(ctx context.Context, ownerID, materialID uuid.UUID, numQuestions int) (*models.QuizDB, error)
}

// QuizReader returns stored quizzes.
type QuizReader interface {
	Get(ctx context.Context, ownerID, quizID uuid.UUID) (*models.QuizDB, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]models.QuizDB, error)
}

// QuizSubmitter scores and records an attempt.
type QuizSubmitter interface {
	Submit(ctx context.Context, ownerID, quizID uuid.UUID, answers []int) (*models.SubmissionDB, int, error)
}

// SubmissionLister returns the attempts at an owned quiz.
type SubmissionLister interface {
	ListSubmissions(ctx context.Context, ownerID, quizID uuid.UUID) ([]models.SubmissionDB, error)
}

// GenerateQuizRequest selects the material and question count
// swagger:model GenerateQuizRequest
type GenerateQuizRequest struct {
	// required: true
	MaterialID string `json:"material_id" validate:"required"`

	// default: 5
	NumQuestions int `json:"num_questions" validate:"min=0,max=50"`
}

// GenerateQuizResponse holds the generated questions. QuizID is omitted
// when no usable question was produced.
// swagger:model GenerateQuizResponse
type GenerateQuizResponse struct {
	QuizID    *uuid.UUID        `json:"quiz_id,omitempty"`
	Questions []models.Question `json:"questions"`
}

// QuizSummary is a quiz list entry
// swagger:model QuizSummary
type QuizSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	MaterialID    uuid.UUID `json:"material_id"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitQuizRequest carries one option index per question
// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	// required: true
	Answers []int `json:"answers" validate:"required,dive,min=0,max=3"`
}

// SubmitQuizResponse reports the score of an attempt
// swagger:model SubmitQuizResponse
type SubmitQuizResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Score        float64   `json:"score"`
	Correct      int       `json:"correct"`
	Total        int       `json:"total"`
}

// NewGenerateQuizHandler returns an HTTP handler generating a quiz from a material.
// @Summary Generate quiz
// @Description Non-empty quizzes are stored; an empty question list means the provider produced nothing usable.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body handlers.GenerateQuizRequest true "Quiz request"
// @Success 201 {object} handlers.GenerateQuizResponse
// @Failure 400 {object} handlers.ErrorResponse "Could not parse file"
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Router /quiz/generate [post]
// @Security BearerAuth
func NewGenerateQuizHandler(svc QuizGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req GenerateQuizRequest
		if !decodeBody(w, r, &req) {
			return
		}
		materialID, err := uuid.Parse(req.MaterialID)
		if err != nil {
			writeError(w, http.StatusNotFound, msgMaterialAbsent)
			return
		}
		if req.NumQuestions == 0 {
			req.NumQuestions = services.DefaultQuizQuestions
		}

		quiz, err := svc.Generate(r.Context(), userID, materialID, req.NumQuestions)
		if err != nil {
			writeMaterialTextError(w, r, err)
			return
		}

		resp := GenerateQuizResponse{Questions: quiz.Questions}
		if resp.Questions == nil {
			resp.Questions = []models.Question{}
		}
		if quiz.QuizID != uuid.Nil {
			resp.QuizID = &quiz.QuizID
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewListQuizzesHandler returns an HTTP handler listing the caller's quizzes.
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} handlers.QuizSummary
// @Router /quizzes [get]
// @Security BearerAuth
func NewListQuizzesHandler(svc QuizReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		quizzes, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		resp := make([]QuizSummary, 0, len(quizzes))
		for _, q := range quizzes {
			resp = append(resp, QuizSummary{
				ID:            q.QuizID,
				Title:         q.Title,
				MaterialID:    q.MaterialID,
				QuestionCount: len(q.Questions),
				CreatedAt:     q.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetQuizHandler returns an HTTP handler for a stored quiz.
// @Summary Get quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz id"
// @Success 200 {object} models.QuizDB
// @Failure 404 {object} handlers.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [get]
// @Security BearerAuth
func NewGetQuizHandler(svc QuizReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		quizID, ok := pathID(w, r, "id", msgQuizAbsent)
		if !ok {
			return
		}

		quiz, err := svc.Get(r.Context(), userID, quizID)
		if err != nil {
			if errors.Is(err, services.ErrQuizNotFound) {
				writeError(w, http.StatusNotFound, msgQuizAbsent)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, quiz)
	}
}

// NewListSubmissionsHandler returns an HTTP handler listing the attempts at a quiz.
// @Summary List quiz attempts
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz id"
// @Success 200 {array} models.SubmissionDB
// @Failure 404 {object} handlers.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/submissions [get]
// @Security BearerAuth
func NewListSubmissionsHandler(svc SubmissionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		quizID, ok := pathID(w, r, "id", msgQuizAbsent)
		if !ok {
			return
		}

		submissions, err := svc.ListSubmissions(r.Context(), userID, quizID)
		if err != nil {
			if errors.Is(err, services.ErrQuizNotFound) {
				writeError(w, http.StatusNotFound, msgQuizAbsent)
				return
			}
			writeInternalError(w, r, err)
			return
		}
		if submissions == nil {
			submissions = []models.SubmissionDB{}
		}

		writeJSON(w, http.StatusOK, submissions)
	}
}

// NewSubmitQuizHandler returns an HTTP handler scoring a quiz attempt.
// @Summary Submit quiz answers
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz id"
// @Param request body handlers.SubmitQuizRequest true "Answers"
// @Success 201 {object} handlers.SubmitQuizResponse
// @Failure 400 {object} handlers.ErrorResponse "Answer count does not match question count"
// @Failure 404 {object} handlers.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/submit [post]
// @Security BearerAuth
func NewSubmitQuizHandler(svc QuizSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		quizID, ok := pathID(w, r, "id", msgQuizAbsent)
		if !ok {
			return
		}

		var req SubmitQuizRequest
		if !decodeBody(w, r, &req) {
			return
		}

		submission, correct, err := svc.Submit(r.Context(), userID, quizID, req.Answers)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuizNotFound):
				writeError(w, http.StatusNotFound, msgQuizAbsent)
			case errors.Is(err, services.ErrAnswerCountMismatch):
				writeError(w, http.StatusBadRequest, "Answer count does not match question count")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, SubmitQuizResponse{
			SubmissionID: submission.SubmissionID,
			Score:        submission.Score,
			Correct:      correct,
			Total:        len(req.Answers),
		})
	}
}
