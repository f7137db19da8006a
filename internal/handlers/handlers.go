// Package handlers implements the HTTP endpoints of the study service.
// Every handler is built by a NewXxxHandler constructor that takes the
// narrow service interface it consumes.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/middlewares"
	"github.com/sbilibin2017/studydesk/internal/services"
)

// Validator checks request bodies against their validate tags.
var Validator = validator.New()

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse carries a human readable confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	Message string `json:"message"`
}

const (
	msgInternal       = "Internal server error"
	msgUnauthorized   = "Unauthorized"
	msgInvalidBody    = "Invalid request body"
	msgMissingFields  = "Missing required fields"
	msgMaterialAbsent = "Material not found"
	msgUnparseable    = "Could not parse file"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// decodeBody decodes a JSON body into dst and validates it. Any failure is
// answered with 400 and reported as false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(r, dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := Validator.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// validationMessage names the first violated constraint.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return msgInvalidBody
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return msgMissingFields
	case "email":
		return "Invalid email"
	case "max":
		if fe.Kind() == reflect.String {
			return "Field " + fe.Field() + " is too long"
		}
		return "Invalid value for " + fe.Field()
	default:
		return "Invalid value for " + fe.Field()
	}
}

// currentUser returns the authenticated user id or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the named URL parameter. Malformed ids are answered with
// notFound, as they cannot name an existing resource.
func pathID(w http.ResponseWriter, r *http.Request, name, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// writeMaterialTextError maps the errors of loading a material's text.
func writeMaterialTextError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrMaterialNotFound):
		writeError(w, http.StatusNotFound, msgMaterialAbsent)
	case errors.Is(err, services.ErrUnparseable), errors.Is(err, services.ErrUnsupportedForExtraction):
		writeError(w, http.StatusBadRequest, msgUnparseable)
	default:
		writeInternalError(w, r, err)
	}
}
