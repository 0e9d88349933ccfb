package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blogem/audit-gateway/metrics"
	"github.com/blogem/audit-gateway/models"
	"github.com/blogem/audit-gateway/repositories"
)

// AuditSink persists audit records, each in its own unit of work. Records
// with an unknown user are never written.
type AuditSink interface {
	// SaveActivity reports failures through the Reporter and never returns them.
	SaveActivity(ctx context.Context, record *models.ActivityRecord)
	// SaveException returns failures; the caller is the last line of defence.
	SaveException(ctx context.Context, record *models.ExceptionRecord) error
}

// AuditService writes and reads audit records.
type AuditService interface {
	AuditSink
	ListActivities(ctx context.Context, filter models.LogFilter) ([]models.ActivityRecord, error)
	ListExceptions(ctx context.Context, filter models.LogFilter) ([]models.ExceptionRecord, error)
}

type auditService struct {
	scopes     repositories.ScopeFactory
	activities repositories.ActivityRepository
	exceptions repositories.ExceptionRepository
	reporter   Reporter
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(
	scopes repositories.ScopeFactory,
	activities repositories.ActivityRepository,
	exceptions repositories.ExceptionRepository,
	reporter Reporter,
	m *metrics.Metrics,
	logger *slog.Logger,
) AuditService {
	return &auditService{
		scopes:     scopes,
		activities: activities,
		exceptions: exceptions,
		reporter:   reporter,
		metrics:    m,
		logger:     logger,
	}
}

func (s *auditService) SaveActivity(ctx context.Context, record *models.ActivityRecord) {
	if record.UserID == 0 {
		s.metrics.Skipped()
		return
	}

	err := s.inScope(ctx, func(uow repositories.UnitOfWork) error {
		return uow.Activities().Insert(ctx, record)
	})
	if err != nil {
		s.metrics.ActivityFailed()
		s.reporter.Capture(ctx, fmt.Errorf("failed to save activity: %w", err))
		return
	}
	s.metrics.ActivitySaved()
}

func (s *auditService) SaveException(ctx context.Context, record *models.ExceptionRecord) error {
	if record.UserID == 0 {
		s.logger.DebugContext(ctx, "exception for unknown user not recorded", "message", record.Message)
		return nil
	}

	err := s.inScope(ctx, func(uow repositories.UnitOfWork) error {
		return uow.Exceptions().Insert(ctx, record)
	})
	if err != nil {
		return fmt.Errorf("failed to save exception: %w", err)
	}
	s.metrics.ExceptionCaptured()
	return nil
}

// inScope runs fn in a fresh unit of work and commits it. The scope is
// always released.
func (s *auditService) inScope(ctx context.Context, fn func(repositories.UnitOfWork) error) error {
	uow, err := s.scopes.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *auditService) ListActivities(ctx context.Context, filter models.LogFilter) ([]models.ActivityRecord, error) {
	return s.activities.List(ctx, filter.Normalize())
}

func (s *auditService) ListExceptions(ctx context.Context, filter models.LogFilter) ([]models.ExceptionRecord, error) {
	return s.exceptions.List(ctx, filter.Normalize())
}
