package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/services"
)

//go:generate mockgen -source=materials.go -destination=mock_materials.go -package=handlers

// multipartOverhead is the room left above the upload limit for form fields and boundaries.
const multipartOverhead = 10 << 20

// MaterialIngester stores uploaded documents.
type MaterialIngester interface {
	Ingest(ctx context.Context, file io.Reader, filename string, ownerID uuid.UUID, title string, description *string) (*models.MaterialDB, error)
}

// MaterialLister lists the materials of a user.
type MaterialLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.MaterialDB, error)
}

// MaterialGetter returns an owned material.
type MaterialGetter interface {
	Get(ctx context.Context, materialID, ownerID uuid.UUID) (*models.MaterialDB, error)
}

// MaterialDeleter removes an owned material with its artifact.
type MaterialDeleter interface {
	Delete(ctx context.Context, materialID, ownerID uuid.UUID) error
}

// UploadResponse describes a stored material
// swagger:model UploadResponse
type UploadResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	FileType string    `json:"file_type"`
}

// MaterialSummary is a material list entry
// swagger:model MaterialSummary
type MaterialSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUploadHandler returns an HTTP handler that ingests a multipart upload.
// @Summary Upload a study material
// @Description Accepts pdf, txt and docx files up to the configured size limit.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param title formData string false "Title" default(Untitled)
// @Param description formData string false "Description"
// @Success 201 {object} handlers.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "No file provided / File type not allowed / File too large"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /materials/upload [post]
// @Security BearerAuth
func NewUploadHandler(svc MaterialIngester, maxSize int64) http.HandlerFunc {
	if maxSize <= 0 {
		maxSize = services.DefaultMaxUploadSize
	}
	tooLarge := &services.TooLargeError{Limit: maxSize}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusBadRequest, tooLargeMessage(tooLarge))
				return
			}
			writeError(w, http.StatusBadRequest, "No file provided")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file provided")
			return
		}
		defer file.Close()

		var description *string
		if d := r.FormValue("description"); d != "" {
			description = &d
		}

		material, err := svc.Ingest(r.Context(), file, header.Filename, userID, r.FormValue("title"), description)
		if err != nil {
			var tl *services.TooLargeError
			switch {
			case errors.Is(err, services.ErrNoFile):
				writeError(w, http.StatusBadRequest, "No file provided")
			case errors.Is(err, services.ErrUnsupportedType):
				writeError(w, http.StatusBadRequest, "File type not allowed")
			case errors.As(err, &tl):
				writeError(w, http.StatusBadRequest, tooLargeMessage(tl))
			case errors.Is(err, services.ErrTitleTooLong):
				writeError(w, http.StatusBadRequest, "Title too long")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, UploadResponse{
			ID:       material.MaterialID,
			Title:    material.Title,
			FileType: material.FileType,
		})
	}
}

func tooLargeMessage(e *services.TooLargeError) string {
	return "File too large. Max size: " + e.LimitMiB() + "MB"
}

// NewListMaterialsHandler returns an HTTP handler listing the caller's materials.
// @Summary List materials
// @Tags materials
// @Produce json
// @Success 200 {array} handlers.MaterialSummary
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /materials [get]
// @Security BearerAuth
func NewListMaterialsHandler(svc MaterialLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		materials, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		resp := make([]MaterialSummary, 0, len(materials))
		for _, m := range materials {
			resp = append(resp, MaterialSummary{ID: m.MaterialID, Title: m.Title, CreatedAt: m.CreatedAt})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetMaterialHandler returns an HTTP handler for material details.
// @Summary Get material
// @Tags materials
// @Produce json
// @Param id path string true "Material id"
// @Success 200 {object} models.MaterialDB
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Router /materials/{id} [get]
// @Security BearerAuth
func NewGetMaterialHandler(svc MaterialGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		materialID, ok := pathID(w, r, "id", msgMaterialAbsent)
		if !ok {
			return
		}

		material, err := svc.Get(r.Context(), materialID, userID)
		if err != nil {
			if errors.Is(err, services.ErrMaterialNotFound) {
				writeError(w, http.StatusNotFound, msgMaterialAbsent)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, material)
	}
}

// NewDeleteMaterialHandler returns an HTTP handler removing a material.
// @Summary Delete material
// @Description Removes the stored file, the material and its quizzes, submissions and progress.
// @Tags materials
// @Produce json
// @Param id path string true "Material id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Material not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /materials/{id} [delete]
// @Security BearerAuth
func NewDeleteMaterialHandler(svc MaterialDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		materialID, ok := pathID(w, r, "id", msgMaterialAbsent)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), materialID, userID); err != nil {
			if errors.Is(err, services.ErrMaterialNotFound) {
				writeError(w, http.StatusNotFound, msgMaterialAbsent)
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Material deleted"})
	}
}
