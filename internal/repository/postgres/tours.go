package postgresrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirinyoku/travelease/internal/domain"
)

const tourColumns = `id, title, description, image, price, duration, location,
	rating, start_date, max_group_size, created_at`

type TourRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *TourRepo) With(db DB) *TourRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *TourRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func scanTour(row pgx.Row, t *domain.Tour) error {
	return row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Image,
		&t.Price,
		&t.Duration,
		&t.Location,
		&t.Rating,
		&t.StartDate,
		&t.MaxGroupSize,
		&t.CreatedAt,
	)
}

// List returns every tour, newest first. The catalog filters run on this
// full list in memory, so there is no paging.
func (r *TourRepo) List(ctx context.Context) ([]domain.Tour, error) {
	const op = "postgresrepo.TourRepo.List"

	return r.list(ctx, op,
		`SELECT `+tourColumns+`
		 FROM tours
		 ORDER BY created_at DESC`,
	)
}

// ListTopRated returns up to limit tours ordered by rating.
func (r *TourRepo) ListTopRated(ctx context.Context, limit int) ([]domain.Tour, error) {
	const op = "postgresrepo.TourRepo.ListTopRated"

	return r.list(ctx, op,
		`SELECT `+tourColumns+`
		 FROM tours
		 ORDER BY rating DESC, created_at DESC
		 LIMIT $1`,
		limit,
	)
}

// Get retrieves a tour by its ID.
//
// Returns:
//   - *domain.Tour: the tour when found.
//   - error: repository.ErrNotFound if the tour is not found.
func (r *TourRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	const op = "postgresrepo.TourRepo.Get"

	db := r.handle()

	var t domain.Tour
	err := scanTour(db.QueryRow(ctx,
		`SELECT `+tourColumns+`
		 FROM tours WHERE id = $1`,
		id,
	), &t)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *TourRepo) list(ctx context.Context, op, sql string, args ...any) ([]domain.Tour, error) {
	db := r.handle()

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := make([]domain.Tour, 0)
	for rows.Next() {
		var t domain.Tour
		if err := scanTour(rows, &t); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
