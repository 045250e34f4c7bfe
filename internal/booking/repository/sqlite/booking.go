package sqlite

import (
	"context"

	"carcare-backend/internal/booking"
	repo "carcare-backend/internal/booking/repository"
)

// InsertBooking inserts a new booking row and returns the created entity.
func (r *implRepository) InsertBooking(ctx context.Context, opt repo.InsertBookingOptions) (booking.Booking, error) {
	const query = `
		INSERT INTO bookings (id, name, email, phone, service, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Name, opt.Email, opt.Phone, opt.Service, opt.Date, opt.Notes, opt.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}

	return booking.Booking{
		ID:        opt.ID,
		Name:      opt.Name,
		Email:     opt.Email,
		Phone:     opt.Phone,
		Service:   opt.Service,
		Date:      opt.Date,
		Notes:     opt.Notes,
		CreatedAt: opt.CreatedAt,
	}, nil
}

// ListBookings returns the most recent bookings, newest first.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	const query = `
		SELECT id, name, email, phone, service, date, notes, created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		var b booking.Booking
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Service, &b.Date, &b.Notes, &b.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return bookings, nil
}
