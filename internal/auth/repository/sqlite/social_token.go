package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	repo "gcal-relay/internal/auth/repository"
	"gcal-relay/internal/model"
)

// UpsertSocialToken writes the account's token, keeping the stored refresh token
// when opt.TokenSecret is empty (Google only sends one on first consent).
func (r *implRepository) UpsertSocialToken(ctx context.Context, opt repo.UpsertSocialTokenOptions) (model.SocialToken, error) {
	const query = `
		INSERT INTO social_tokens (id, account_id, token, token_secret, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_id) DO UPDATE SET
			token = excluded.token,
			token_secret = CASE
				WHEN excluded.token_secret = '' THEN social_tokens.token_secret
				ELSE excluded.token_secret
			END,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at`

	var expiresAt sql.NullTime
	if !opt.ExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: opt.ExpiresAt.UTC(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), opt.AccountID, opt.Token, opt.TokenSecret, expiresAt, time.Now().UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSocialToken"), err)
		return model.SocialToken{}, repo.ErrFailedToUpsert
	}

	return r.GetOneSocialToken(ctx, repo.GetOneSocialTokenOptions{AccountID: opt.AccountID})
}

// GetOneSocialToken returns a zero-value SocialToken (ID == "") when not found.
func (r *implRepository) GetOneSocialToken(ctx context.Context, opt repo.GetOneSocialTokenOptions) (model.SocialToken, error) {
	const query = `
		SELECT id, account_id, token, token_secret, expires_at, updated_at
		FROM social_tokens WHERE account_id = ? LIMIT 1`

	t, err := scanSocialToken(r.db.QueryRowContext(ctx, query, opt.AccountID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SocialToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSocialToken"), err)
		return model.SocialToken{}, repo.ErrFailedToGet
	}
	return t, nil
}

func scanSocialToken(row *sql.Row) (model.SocialToken, error) {
	var (
		t         model.SocialToken
		expiresAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.AccountID, &t.Token, &t.TokenSecret, &expiresAt, &t.UpdatedAt); err != nil {
		return model.SocialToken{}, err
	}
	if expiresAt.Valid {
		t.ExpiresAt = expiresAt.Time
	}
	return t, nil
}
