package models

import (
	"time"
)

// AuditFields contains common tracking fields for admin-managed rows.
// User ids come from the request identity; zero means unknown.
type AuditFields struct {
	CreatedBy  int        `json:"created_by,omitempty"`
	ModifiedBy int        `json:"modified_by,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

const (
	// DefaultListLimit is used when a list request does not ask for a size.
	DefaultListLimit = 50
	// MaxListLimit caps every list request.
	MaxListLimit = 500
)

// LogFilter narrows audit record listings.
type LogFilter struct {
	UserID int `json:"user_id,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// Normalize clamps the limit into [1, MaxListLimit], defaulting to DefaultListLimit.
func (f LogFilter) Normalize() LogFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultListLimit
	case f.Limit > MaxListLimit:
		f.Limit = MaxListLimit
	}
	if f.UserID < 0 {
		f.UserID = 0
	}
	return f
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}
