package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// dbtx is the subset of *sql.DB and *sql.Tx the repositories need, so the same
// repository code runs inside or outside a unit of work.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories struct holds all repository interfaces
type Repositories struct {
	Roles      RoleRepository
	Activities ActivityRepository
	Exceptions ExceptionRepository
	Scopes     ScopeFactory
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Roles:      NewRoleRepository(db),
		Activities: NewActivityRepository(db),
		Exceptions: NewExceptionRepository(db),
		Scopes:     NewScopeFactory(db),
	}
}
