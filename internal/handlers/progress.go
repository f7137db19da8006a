package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=progress.go -destination=mock_progress.go -package=handlers

// ProgressRecorder stores and lists reading progress.
type ProgressRecorder interface {
	Record(ctx context.Context, userID, materialID uuid.UUID, pagesRead, timeSpent int, completion float64) (*models.ProgressDB, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.ProgressDB, error)
}

// ProgressRequest reports a reading session
// swagger:model ProgressRequest
type ProgressRequest struct {
	// Pages read so far
	PagesRead int `json:"pages_read" validate:"min=0"`

	// Seconds spent in this session, added to the total
	TimeSpent int `json:"time_spent" validate:"min=0"`

	// Completion, clamped to 0-100
	CompletionPercentage float64 `json:"completion_percentage"`
}

// NewUpdateProgressHandler returns an HTTP handler recording reading progress.
// @Summary Record progress
// @Tags progress
// @Accept json
// @Produce json
// @Param material_id path string true "Material id"
// @Param request body handlers.ProgressRequest true "Progress"
// @Success 200 {object} models.ProgressDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid value"
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Router /progress/{material_id} [put]
// @Security BearerAuth
func NewUpdateProgressHandler(svc ProgressRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		materialID, ok := pathID(w, r, "material_id", msgMaterialAbsent)
		if !ok {
			return
		}

		var req ProgressRequest
		if !decodeBody(w, r, &req) {
			return
		}

		progress, err := svc.Record(r.Context(), userID, materialID, req.PagesRead, req.TimeSpent, req.CompletionPercentage)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMaterialNotFound):
				writeError(w, http.StatusNotFound, msgMaterialAbsent)
			case errors.Is(err, services.ErrInvalidProgress):
				writeError(w, http.StatusBadRequest, "Pages read and time spent must not be negative")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}

// NewListProgressHandler returns an HTTP handler listing the caller's progress.
// @Summary List progress
// @Tags progress
// @Produce json
// @Success 200 {array} models.ProgressDB
// @Router /progress [get]
// @Security BearerAuth
func NewListProgressHandler(svc ProgressRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if items == nil {
			items = []models.ProgressDB{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}
