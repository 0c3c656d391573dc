package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "gcal-relay/internal/auth/repository"
	"gcal-relay/internal/model"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u, err := insertUser(ctx, r.db, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func insertUser(ctx context.Context, db execer, opt repo.CreateUserOptions) (model.User, error) {
	const query = `INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)`

	u := model.User{
		ID:        uuid.NewString(),
		Email:     opt.Email,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := db.ExecContext(ctx, query, u.ID, u.Email, u.CreatedAt); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// GetOneUser returns a zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneUserQuery(opt)
	query := fmt.Sprintf(`SELECT id, email, created_at FROM users WHERE %s LIMIT 1`, mods)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
