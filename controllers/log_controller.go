package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/blogem/audit-gateway/models"
	"github.com/blogem/audit-gateway/services"
)

// LogController serves the recorded activities and exceptions
type LogController struct {
	services *services.Services
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services) *LogController {
	return &LogController{services: services}
}

// Activities handles GET /log/activities?user_id=&limit=
func (c *LogController) Activities(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	records, err := c.services.Audit.ListActivities(r.Context(), filter)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Exceptions handles GET /log/exceptions?user_id=&limit=
func (c *LogController) Exceptions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	records, err := c.services.Audit.ListExceptions(r.Context(), filter)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func parseLogFilter(r *http.Request) (models.LogFilter, error) {
	var filter models.LogFilter
	query := r.URL.Query()

	if v := query.Get("user_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id < 0 {
			return filter, fmt.Errorf("%w: invalid user_id: %q", services.ErrValidation, v)
		}
		filter.UserID = id
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, fmt.Errorf("%w: invalid limit: %q", services.ErrValidation, v)
		}
		filter.Limit = limit
	}

	return filter.Normalize(), nil
}
