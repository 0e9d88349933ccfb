package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blogem/audit-gateway/metrics"
	"github.com/blogem/audit-gateway/userctx"
)

var (
	// ErrValidation wraps form validation failures.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when the caller has no usable identity.
	ErrUnauthorized = errors.New("invalid login or access token")
)

// Reporter captures errors out of band. Capture must never panic and never
// block the caller on a remote service.
type Reporter interface {
	Capture(ctx context.Context, err error)
}

// LogReporter reports errors to the structured log and counts them.
type LogReporter struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewLogReporter creates a new log reporter
func NewLogReporter(logger *slog.Logger, m *metrics.Metrics) *LogReporter {
	return &LogReporter{logger: logger, metrics: m}
}

func (r *LogReporter) Capture(ctx context.Context, err error) {
	if err == nil {
		return
	}
	r.metrics.ErrorReported()
	r.logger.ErrorContext(ctx, "captured error",
		"error", err,
		"user_id", userctx.UserID(ctx),
	)
}
