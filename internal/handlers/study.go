package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=study.go -destination=mock_study.go -package=handlers

// Placeholders returned with degraded: true when the provider fails.
const (
	degradedSummary     = "Error generating summary: the AI provider is currently unavailable"
	degradedStudyPlan   = "Error generating study plan: the AI provider is currently unavailable"
	degradedExplanation = "Error explaining concept: the AI provider is currently unavailable"
)

// Summarizer produces a material summary.
type Summarizer interface {
	Summary(ctx context.Context, ownerID, materialID uuid.UUID) (string, error)
}

// FlashcardMaker produces flashcards from a material.
type FlashcardMaker interface {
	Flashcards(ctx context.Context, ownerID, materialID uuid.UUID, numCards int) ([]models.Flashcard, error)
}

// StudyPlanner produces a study plan for a material.
type StudyPlanner interface {
	StudyPlan(ctx context.Context, ownerID, materialID uuid.UUID, days int) (string, error)
}

// ConceptExplainer explains a concept in plain words.
type ConceptExplainer interface {
	ExplainConcept(ctx context.Context, concept, background string) (string, error)
}

// MaterialRequest selects an owned material
// swagger:model MaterialRequest
type MaterialRequest struct {
	// required: true
	MaterialID string `json:"material_id" validate:"required"`
}

// SummaryResponse holds a summary or the degraded placeholder
// swagger:model SummaryResponse
type SummaryResponse struct {
	Summary  string `json:"summary"`
	Degraded bool   `json:"degraded"`
}

// FlashcardsRequest selects the material and card count
// swagger:model FlashcardsRequest
type FlashcardsRequest struct {
	// required: true
	MaterialID string `json:"material_id" validate:"required"`

	// default: 10
	NumCards int `json:"num_cards" validate:"min=0,max=100"`
}

// FlashcardsResponse holds the generated cards, possibly none
// swagger:model FlashcardsResponse
type FlashcardsResponse struct {
	Flashcards []models.Flashcard `json:"flashcards"`
}

// StudyPlanRequest selects the material and plan length
// swagger:model StudyPlanRequest
type StudyPlanRequest struct {
	// required: true
	MaterialID string `json:"material_id" validate:"required"`

	// default: 7
	Days int `json:"days" validate:"min=0,max=365"`
}

// StudyPlanResponse holds a plan or the degraded placeholder
// swagger:model StudyPlanResponse
type StudyPlanResponse struct {
	Plan     string `json:"plan"`
	Degraded bool   `json:"degraded"`
}

// ExplainRequest names the concept and optional context
// swagger:model ExplainRequest
type ExplainRequest struct {
	// required: true
	Concept string `json:"concept" validate:"required,max=500"`
	Context string `json:"context" validate:"max=5000"`
}

// ExplainResponse holds an explanation or the degraded placeholder
// swagger:model ExplainResponse
type ExplainResponse struct {
	Explanation string `json:"explanation"`
	Degraded    bool   `json:"degraded"`
}

// materialIDFrom parses an id taken from a request body; malformed ids are answered with 404.
func materialIDFrom(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, msgMaterialAbsent)
		return uuid.Nil, false
	}
	return id, true
}

// NewSummaryHandler returns an HTTP handler summarizing a material.
// @Summary Generate summary
// @Description Provider failures yield a placeholder with degraded set.
// @Tags study
// @Accept json
// @Produce json
// @Param request body handlers.MaterialRequest true "Material"
// @Success 200 {object} handlers.SummaryResponse
// @Failure 400 {object} handlers.ErrorResponse "Could not parse file"
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Router /summary/generate [post]
// @Security BearerAuth
func NewSummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req MaterialRequest
		if !decodeBody(w, r, &req) {
			return
		}
		materialID, ok := materialIDFrom(w, req.MaterialID)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), userID, materialID)
		if errors.Is(err, services.ErrGenerationFailed) {
			logger.Log.Warnw("summary degraded", "material_id", materialID)
			writeJSON(w, http.StatusOK, SummaryResponse{Summary: degradedSummary, Degraded: true})
			return
		}
		if err != nil {
			writeMaterialTextError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
	}
}

// NewFlashcardsHandler returns an HTTP handler generating flashcards.
// @Summary Generate flashcards
// @Tags study
// @Accept json
// @Produce json
// @Param request body handlers.FlashcardsRequest true "Flashcards request"
// @Success 200 {object} handlers.FlashcardsResponse
// @Failure 400 {object} handlers.ErrorResponse "Could not parse file"
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Router /flashcards/generate [post]
// @Security BearerAuth
func NewFlashcardsHandler(svc FlashcardMaker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req FlashcardsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		materialID, ok := materialIDFrom(w, req.MaterialID)
		if !ok {
			return
		}
		if req.NumCards == 0 {
			req.NumCards = services.DefaultFlashcards
		}

		cards, err := svc.Flashcards(r.Context(), userID, materialID, req.NumCards)
		if err != nil {
			writeMaterialTextError(w, r, err)
			return
		}
		if cards == nil {
			cards = []models.Flashcard{}
		}

		writeJSON(w, http.StatusOK, FlashcardsResponse{Flashcards: cards})
	}
}

// NewStudyPlanHandler returns an HTTP handler generating a study plan.
// @Summary Generate study plan
// @Tags study
// @Accept json
// @Produce json
// @Param request body handlers.StudyPlanRequest true "Study plan request"
// @Success 200 {object} handlers.StudyPlanResponse
// @Failure 400 {object} handlers.ErrorResponse "Could not parse file"
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Router /study-plan/generate [post]
// @Security BearerAuth
func NewStudyPlanHandler(svc StudyPlanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req StudyPlanRequest
		if !decodeBody(w, r, &req) {
			return
		}
		materialID, ok := materialIDFrom(w, req.MaterialID)
		if !ok {
			return
		}
		if req.Days == 0 {
			req.Days = services.DefaultStudyDays
		}

		plan, err := svc.StudyPlan(r.Context(), userID, materialID, req.Days)
		if errors.Is(err, services.ErrGenerationFailed) {
			logger.Log.Warnw("study plan degraded", "material_id", materialID)
			writeJSON(w, http.StatusOK, StudyPlanResponse{Plan: degradedStudyPlan, Degraded: true})
			return
		}
		if err != nil {
			writeMaterialTextError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, StudyPlanResponse{Plan: plan})
	}
}

// NewExplainConceptHandler returns an HTTP handler explaining a concept.
// @Summary Explain concept
// @Tags study
// @Accept json
// @Produce json
// @Param request body handlers.ExplainRequest true "Concept"
// @Success 200 {object} handlers.ExplainResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Router /concepts/explain [post]
// @Security BearerAuth
func NewExplainConceptHandler(svc ConceptExplainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}
		var req ExplainRequest
		if !decodeBody(w, r, &req) {
			return
		}

		explanation, err := svc.ExplainConcept(r.Context(), req.Concept, req.Context)
		if errors.Is(err, services.ErrGenerationFailed) {
			logger.Log.Warnw("explanation degraded", "concept", req.Concept)
			writeJSON(w, http.StatusOK, ExplainResponse{Explanation: degradedExplanation, Degraded: true})
			return
		}
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ExplainResponse{Explanation: explanation})
	}
}
