package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UnitOfWork groups repository writes into one transaction. Exactly one of
// Commit or Rollback ends it; Rollback after Commit is a no-op, so callers
// can defer it.
type UnitOfWork interface {
	Activities() ActivityRepository
	Exceptions() ExceptionRepository
	Commit() error
	Rollback() error
}

// ScopeFactory opens a fresh unit of work per call.
type ScopeFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

type sqliteScopeFactory struct {
	db *sql.DB
}

// NewScopeFactory creates a scope factory backed by db
func NewScopeFactory(db *sql.DB) ScopeFactory {
	return &sqliteScopeFactory{db: db}
}

func (f *sqliteScopeFactory) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	return &sqliteUnitOfWork{
		tx:         tx,
		activities: NewActivityRepository(tx),
		exceptions: NewExceptionRepository(tx),
	}, nil
}

type sqliteUnitOfWork struct {
	tx         *sql.Tx
	activities ActivityRepository
	exceptions ExceptionRepository
}

func (u *sqliteUnitOfWork) Activities() ActivityRepository { return u.activities }

func (u *sqliteUnitOfWork) Exceptions() ExceptionRepository { return u.exceptions }

func (u *sqliteUnitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}

func (u *sqliteUnitOfWork) Rollback() error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to roll back unit of work: %w", err)
	}
	return nil
}
