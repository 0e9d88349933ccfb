package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/audit-gateway/repositories"
	"github.com/blogem/audit-gateway/services"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controllers holds all controller instances
type Controllers struct {
	Auth   *AuthController
	Roles  *RoleController
	Logs   *LogController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, db Pinger, userIDClaim string) *Controllers {
	return &Controllers{
		Auth:   NewAuthController(userIDClaim),
		Roles:  NewRoleController(services),
		Logs:   NewLogController(services),
		Health: NewHealthController(db),
	}
}

// writeJSON writes data as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors to status codes. Unexpected errors are
// reported before answering 500.
func respondError(w http.ResponseWriter, r *http.Request, reporter services.Reporter, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid login or access token"})
	case errors.Is(err, repositories.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		if reporter != nil {
			reporter.Capture(r.Context(), err)
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// decodeJSON reads the request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", services.ErrValidation, err)
	}
	return nil
}

// urlParamID parses a positive integer URL parameter
func urlParamID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s: %q", services.ErrValidation, name, raw)
	}
	return id, nil
}
