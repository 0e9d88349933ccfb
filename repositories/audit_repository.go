package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/audit-gateway/models"
)

// ActivityRepository persists activity records.
type ActivityRepository interface {
	Insert(ctx context.Context, record *models.ActivityRecord) error
	List(ctx context.Context, filter models.LogFilter) ([]models.ActivityRecord, error)
}

// ExceptionRepository persists exception records.
type ExceptionRepository interface {
	Insert(ctx context.Context, record *models.ExceptionRecord) error
	List(ctx context.Context, filter models.LogFilter) ([]models.ExceptionRecord, error)
}

type sqliteActivityRepository struct {
	db dbtx
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db dbtx) ActivityRepository {
	return &sqliteActivityRepository{db: db}
}

// Insert stores record and sets its ID. A zero timestamp is stamped with the
// current time.
func (r *sqliteActivityRepository) Insert(ctx context.Context, record *models.ActivityRecord) error {
	query := `
		INSERT INTO activity_logs (request_id, url, http_method, controller_name, action_name,
		                           user_id, object_id, raw_body, client_ip, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		record.RequestID,
		record.URL,
		record.HTTPMethod,
		record.ControllerName,
		record.ActionName,
		record.UserID,
		record.ObjectID,
		record.RawBody,
		record.ClientIP,
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	record.ID = id
	return nil
}

// List returns the newest activity records first.
func (r *sqliteActivityRepository) List(ctx context.Context, filter models.LogFilter) ([]models.ActivityRecord, error) {
	filter = filter.Normalize()
	query := `
		SELECT id, request_id, url, http_method, controller_name, action_name,
		       user_id, object_id, raw_body, client_ip, timestamp
		FROM activity_logs
		WHERE (? = 0 OR user_id = ?)
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, filter.UserID, filter.UserID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	records := []models.ActivityRecord{}
	for rows.Next() {
		var rec models.ActivityRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.URL,
			&rec.HTTPMethod,
			&rec.ControllerName,
			&rec.ActionName,
			&rec.UserID,
			&rec.ObjectID,
			&rec.RawBody,
			&rec.ClientIP,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity logs: %w", err)
	}
	return records, nil
}

type sqliteExceptionRepository struct {
	db dbtx
}

// NewExceptionRepository creates a new exception repository
func NewExceptionRepository(db dbtx) ExceptionRepository {
	return &sqliteExceptionRepository{db: db}
}

func (r *sqliteExceptionRepository) Insert(ctx context.Context, record *models.ExceptionRecord) error {
	query := `
		INSERT INTO exception_logs (request_id, user_id, message, stack_trace, inner_message, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		record.RequestID,
		record.UserID,
		record.Message,
		record.StackTrace,
		record.InnerMessage,
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert exception log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	record.ID = id
	return nil
}

func (r *sqliteExceptionRepository) List(ctx context.Context, filter models.LogFilter) ([]models.ExceptionRecord, error) {
	filter = filter.Normalize()
	query := `
		SELECT id, request_id, user_id, message, stack_trace, inner_message, timestamp
		FROM exception_logs
		WHERE (? = 0 OR user_id = ?)
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, filter.UserID, filter.UserID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exception logs: %w", err)
	}
	defer rows.Close()

	records := []models.ExceptionRecord{}
	for rows.Next() {
		var rec models.ExceptionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.UserID,
			&rec.Message,
			&rec.StackTrace,
			&rec.InnerMessage,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exception log: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exception logs: %w", err)
	}
	return records, nil
}
