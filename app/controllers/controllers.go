// Package controllers contains the HTTP handlers. Handlers stay thin: bind
// and validate input, call a service, translate the outcome into a response
// envelope. Authorisation is never checked here — the Auth middleware is the
// single enforcement point and hands handlers the caller id via
// middleware.UserID.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// uintParam parses a URL path parameter as an id. Returns ok=false after
// writing a 404 — a non-numeric id can never reference a record.
func uintParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.NotFound(w)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps a service error onto the HTTP error taxonomy.
// Anything unrecognised is a persistence-layer failure: logged, surfaced as
// a 500, never retried here.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrEmailTaken):
		response.Conflict(w, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.WithCtx(r.Context()).Error("store failure", "error", err.Error())
		response.ServerError(w)
	}
}
