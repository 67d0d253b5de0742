package postgresrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirinyoku/travelease/internal/domain"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ProfileRepo) With(db DB) *ProfileRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ProfileRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ProfileRepo) Create(ctx context.Context, p domain.Profile) error {
	const op = "postgresrepo.ProfileRepo.Create"

	db := r.handle()

	if _, err := db.Exec(ctx,
		`INSERT INTO profiles(user_id, name, avatar_url)
		 VALUES ($1, $2, $3)`,
		p.UserID, p.Name, p.AvatarURL,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Get retrieves a profile by user ID.
//
// Returns:
//   - error: repository.ErrNotFound if the user has no profile row.
func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	const op = "postgresrepo.ProfileRepo.Get"

	db := r.handle()

	var p domain.Profile
	err := db.QueryRow(ctx,
		`SELECT user_id, name, avatar_url, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Name, &p.AvatarURL, &p.UpdatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &p, nil
}

// Update applies the non-nil fields of upd and returns the stored profile.
//
// Returns:
//   - error: repository.ErrNotFound if the user has no profile row.
func (r *ProfileRepo) Update(ctx context.Context, userID uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error) {
	const op = "postgresrepo.ProfileRepo.Update"

	db := r.handle()

	var p domain.Profile
	err := db.QueryRow(ctx,
		`UPDATE profiles
		 SET name = COALESCE($2, name),
		     avatar_url = COALESCE($3, avatar_url),
		     updated_at = now()
		 WHERE user_id = $1
		 RETURNING user_id, name, avatar_url, updated_at`,
		userID, upd.Name, upd.AvatarURL,
	).Scan(&p.UserID, &p.Name, &p.AvatarURL, &p.UpdatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &p, nil
}
