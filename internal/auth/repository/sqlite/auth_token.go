package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "gcal-relay/internal/auth/repository"
	"gcal-relay/internal/model"
)

// GetOrCreateAuthToken returns the user's API key, issuing one if none exists.
func (r *implRepository) GetOrCreateAuthToken(ctx context.Context, userID string) (model.AuthToken, error) {
	const insert = `
		INSERT INTO auth_tokens (token_key, user_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, insert, newKey(), userID, time.Now().UTC()); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("GetOrCreateAuthToken"), err)
		return model.AuthToken{}, repo.ErrFailedToInsert
	}

	const query = `SELECT token_key, user_id, created_at FROM auth_tokens WHERE user_id = ?`
	var t model.AuthToken
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("GetOrCreateAuthToken"), err)
		return model.AuthToken{}, repo.ErrFailedToGet
	}
	return t, nil
}

// GetOneAuthToken returns a zero-value AuthToken (Key == "") when not found.
func (r *implRepository) GetOneAuthToken(ctx context.Context, key string) (model.AuthToken, error) {
	const query = `SELECT token_key, user_id, created_at FROM auth_tokens WHERE token_key = ?`

	var t model.AuthToken
	err := r.db.QueryRowContext(ctx, query, key).Scan(&t.Key, &t.UserID, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AuthToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAuthToken"), err)
		return model.AuthToken{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) DeleteAuthToken(ctx context.Context, userID string) error {
	const query = `DELETE FROM auth_tokens WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAuthToken"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// newKey returns a 32-character hex API key.
func newKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
