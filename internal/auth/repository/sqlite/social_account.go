package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	repo "gcal-relay/internal/auth/repository"
	"gcal-relay/internal/model"
)

func (r *implRepository) CreateSocialAccount(ctx context.Context, opt repo.CreateSocialAccountOptions) (model.SocialAccount, error) {
	a, err := insertSocialAccount(ctx, r.db, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSocialAccount"), err)
		return model.SocialAccount{}, repo.ErrFailedToInsert
	}
	return a, nil
}

// CreateUserWithSocialAccount creates a user and links the social account to it in one
// transaction. If the account already exists nothing is written and ErrAlreadyExists is returned.
func (r *implRepository) CreateUserWithSocialAccount(ctx context.Context, opt repo.CreateUserWithSocialAccountOptions) (model.SocialAccount, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s BeginTx: %v", r.dsn("CreateUserWithSocialAccount"), err)
		return model.SocialAccount{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	u, err := insertUser(ctx, tx, repo.CreateUserOptions{Email: opt.Email})
	if err != nil {
		r.l.Errorf(ctx, "%s insertUser: %v", r.dsn("CreateUserWithSocialAccount"), err)
		return model.SocialAccount{}, repo.ErrFailedToInsert
	}

	a, err := insertSocialAccount(ctx, tx, repo.CreateSocialAccountOptions{
		UserID:   u.ID,
		Provider: opt.Provider,
		UID:      opt.UID,
		Email:    opt.Email,
	})
	if isUniqueViolation(err) {
		r.l.Warnf(ctx, "%s: account %s/%s already exists", r.dsn("CreateUserWithSocialAccount"), opt.Provider, opt.UID)
		return model.SocialAccount{}, repo.ErrAlreadyExists
	}
	if err != nil {
		r.l.Errorf(ctx, "%s insertSocialAccount: %v", r.dsn("CreateUserWithSocialAccount"), err)
		return model.SocialAccount{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s Commit: %v", r.dsn("CreateUserWithSocialAccount"), err)
		return model.SocialAccount{}, repo.ErrFailedToInsert
	}
	return a, nil
}

func insertSocialAccount(ctx context.Context, db execer, opt repo.CreateSocialAccountOptions) (model.SocialAccount, error) {
	const query = `
		INSERT INTO social_accounts (id, user_id, provider, uid, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	a := model.SocialAccount{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Provider:  opt.Provider,
		UID:       opt.UID,
		Email:     opt.Email,
		CreatedAt: time.Now().UTC(),
	}
	_, err := db.ExecContext(ctx, query, a.ID, a.UserID, a.Provider, a.UID, a.Email, a.CreatedAt)
	if err != nil {
		return model.SocialAccount{}, err
	}
	return a, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// GetOneSocialAccount returns a zero-value SocialAccount (ID == "") when not found.
func (r *implRepository) GetOneSocialAccount(ctx context.Context, opt repo.GetOneSocialAccountOptions) (model.SocialAccount, error) {
	mods, args := r.buildGetOneSocialAccountQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, user_id, provider, uid, email, created_at FROM social_accounts WHERE %s LIMIT 1`,
		mods,
	)

	var a model.SocialAccount
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.UserID, &a.Provider, &a.UID, &a.Email, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SocialAccount{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSocialAccount"), err)
		return model.SocialAccount{}, repo.ErrFailedToGet
	}
	return a, nil
}
