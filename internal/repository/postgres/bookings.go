package postgresrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kirinyoku/travelease/internal/domain"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts one booking and returns the stored record. Every call
// creates a new row: nothing deduplicates repeated submissions.
//
// Returns:
//   - *domain.Booking: the created booking with its ID and created_at.
//   - error: repository.ErrNotFound if the user or tour does not exist.
func (r *BookingRepo) Create(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	const op = "postgresrepo.BookingRepo.Create"

	db := r.handle()

	out := b
	out.ID = uuid.New()

	err := db.QueryRow(ctx,
		`INSERT INTO bookings(id, user_id, tour_id, booking_date, num_participants, total_price, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		out.ID, b.UserID, b.TourID, b.BookingDate, b.NumParticipants, b.TotalPrice, b.Status,
	).Scan(&out.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// ListByUser returns a user's bookings, newest first, each joined with its tour.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BookingWithTour, error) {
	const op = "postgresrepo.BookingRepo.ListByUser"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT b.id, b.user_id, b.tour_id, b.booking_date, b.num_participants,
		        b.total_price, b.status, b.created_at,
		        t.id, t.title, t.description, t.image, t.price, t.duration, t.location,
		        t.rating, t.start_date, t.max_group_size, t.created_at
		 FROM bookings b
		 JOIN tours t ON t.id = b.tour_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	out := make([]domain.BookingWithTour, 0)
	for rows.Next() {
		var bt domain.BookingWithTour

		if err := rows.Scan(
			&bt.ID,
			&bt.UserID,
			&bt.TourID,
			&bt.BookingDate,
			&bt.NumParticipants,
			&bt.TotalPrice,
			&bt.Status,
			&bt.CreatedAt,
			&bt.Tour.ID,
			&bt.Tour.Title,
			&bt.Tour.Description,
			&bt.Tour.Image,
			&bt.Tour.Price,
			&bt.Tour.Duration,
			&bt.Tour.Location,
			&bt.Tour.Rating,
			&bt.Tour.StartDate,
			&bt.Tour.MaxGroupSize,
			&bt.Tour.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
