package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"gcal-relay/internal/auth/repository"
	"gcal-relay/pkg/log"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the auth domain.
// The database must already carry Schema.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/sqlite.%s", method)
}
