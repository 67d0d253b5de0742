package postgresrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirinyoku/travelease/internal/domain"
)

type AdminRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AdminRepo) With(db DB) *AdminRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AdminRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// BatchUpsertTours inserts tours keyed by title, updating the catalog fields
// of titles that already exist. It returns the number of rows written.
func (r *AdminRepo) BatchUpsertTours(ctx context.Context, tours []domain.Tour) (int64, error) {
	const op = "postgresrepo.AdminRepo.BatchUpsertTours"

	db := r.handle()

	batch := &pgx.Batch{}
	for _, t := range tours {
		id := t.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		batch.Queue(
			`INSERT INTO tours(id, title, description, image, price, duration, location,
			                   rating, start_date, max_group_size)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (title) DO UPDATE
			 SET description = EXCLUDED.description,
			     image = EXCLUDED.image,
			     price = EXCLUDED.price,
			     duration = EXCLUDED.duration,
			     location = EXCLUDED.location,
			     rating = EXCLUDED.rating,
			     start_date = EXCLUDED.start_date,
			     max_group_size = EXCLUDED.max_group_size`,
			id, t.Title, t.Description, t.Image, t.Price, t.Duration, t.Location,
			t.Rating, t.StartDate, t.MaxGroupSize,
		)
	}

	br := db.SendBatch(ctx, batch)

	var written int64
	for range tours {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return written, wrapDBErr(op, err)
		}
		written += tag.RowsAffected()
	}

	if err := br.Close(); err != nil {
		return written, wrapDBErr(op, err)
	}

	return written, nil
}

// DeleteToursNotIn removes tours whose title is not in keep, along with their
// bookings and reviews.
func (r *AdminRepo) DeleteToursNotIn(ctx context.Context, keep []string) (int64, error) {
	const op = "postgresrepo.AdminRepo.DeleteToursNotIn"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`DELETE FROM tours WHERE NOT (title = ANY($1))`,
		keep,
	)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return tag.RowsAffected(), nil
}
