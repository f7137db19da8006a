package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/middlewares"
)

// authed returns req carrying userID as the authenticated user.
func authed(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middlewares.WithUserID(req.Context(), userID))
}

// withParam adds a chi URL parameter to req.
func withParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(req.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
