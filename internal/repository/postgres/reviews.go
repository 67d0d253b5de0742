package postgresrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirinyoku/travelease/internal/domain"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReviewRepo) With(db DB) *ReviewRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReviewRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ReviewRepo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	const op = "postgresrepo.ReviewRepo.Create"

	db := r.handle()

	out := rv
	out.ID = uuid.New()

	err := db.QueryRow(ctx,
		`INSERT INTO reviews(id, user_id, tour_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		out.ID, rv.UserID, rv.TourID, rv.Rating, rv.Comment,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// ListByTour returns a tour's reviews, newest first, with the author's name and
// avatar. Authors without a profile row come back with empty fields.
func (r *ReviewRepo) ListByTour(ctx context.Context, tourID uuid.UUID) ([]domain.ReviewWithAuthor, error) {
	const op = "postgresrepo.ReviewRepo.ListByTour"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, r.tour_id, r.rating, r.comment, r.created_at,
		        COALESCE(p.name, ''), COALESCE(p.avatar_url, '')
		 FROM reviews r
		 LEFT JOIN profiles p ON p.user_id = r.user_id
		 WHERE r.tour_id = $1
		 ORDER BY r.created_at DESC`,
		tourID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := make([]domain.ReviewWithAuthor, 0)
	for rows.Next() {
		var rv domain.ReviewWithAuthor

		if err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.TourID,
			&rv.Rating,
			&rv.Comment,
			&rv.CreatedAt,
			&rv.AuthorName,
			&rv.AuthorAvatar,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
