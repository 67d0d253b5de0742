package postgresrepo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirinyoku/travelease/internal/domain"
	"github.com/kirinyoku/travelease/internal/repository"
)

// Credentials is a user row as the auth provider sees it.
type Credentials struct {
	User         domain.User
	PasswordHash []byte
}

type UserRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *UserRepo) With(db DB) *UserRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *UserRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a user with an already hashed password.
//
// Returns:
//   - error: repository.ErrConflict if the email is taken.
func (r *UserRepo) Create(ctx context.Context, id uuid.UUID, email string, passwordHash []byte) error {
	const op = "postgresrepo.UserRepo.Create"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO users(id, email, password_hash)
		 VALUES ($1, lower($2), $3)`,
		id, email, passwordHash,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*Credentials, error) {
	const op = "postgresrepo.UserRepo.GetByEmail"

	return r.get(ctx, op, `u.email = lower($1)`, email)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*Credentials, error) {
	const op = "postgresrepo.UserRepo.GetByID"

	return r.get(ctx, op, `u.id = $1`, id)
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash []byte) error {
	const op = "postgresrepo.UserRepo.UpdatePassword"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *UserRepo) get(ctx context.Context, op, where string, arg any) (*Credentials, error) {
	db := r.handle()

	var c Credentials
	err := db.QueryRow(ctx,
		`SELECT u.id, u.email, u.password_hash,
		        COALESCE(p.name, ''), COALESCE(p.avatar_url, '')
		 FROM users u
		 LEFT JOIN profiles p ON p.user_id = u.id
		 WHERE `+where,
		arg,
	).Scan(&c.User.ID, &c.User.Email, &c.PasswordHash, &c.User.Name, &c.User.AvatarURL)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}
