package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/LucasOrihuela13/sistema-hotel/app/entities"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const (
	exclusionViolation = "23P01"
	uniqueViolation    = "23505"
)

type ReservationRepository interface {
	Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Reservation, error)
	Delete(ctx context.Context, id int64) (int64, error)
	CheckAvailability(ctx context.Context, room int, checkIn, checkOut time.Time) (bool, error)
	HasDuplicate(ctx context.Context, room int, checkIn time.Time, guestName string) (bool, error)
	OccupiedRooms(ctx context.Context, windowStart, windowEnd time.Time) (map[int]bool, error)
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// CheckAvailability reports whether the room is free for [checkIn, checkOut).
// The result is only valid at the instant of the read; the exclusion
// constraint on the table is what makes the subsequent insert safe.
func (r *reservationRepository) CheckAvailability(ctx context.Context, room int, checkIn, checkOut time.Time) (bool, error) {
	var existing int
	query := `SELECT COUNT(*) FROM reservations WHERE room_id = $1 AND check_in < $2 AND check_out > $3`
	err := r.db.QueryRowContext(ctx, query, room, checkOut, checkIn).Scan(&existing)
	if err != nil {
		return false, fmt.Errorf("checking availability: %w", err)
	}
	return existing == 0, nil
}

func (r *reservationRepository) HasDuplicate(ctx context.Context, room int, checkIn time.Time, guestName string) (bool, error) {
	var id int64
	query := `SELECT id FROM reservations WHERE room_id = $1 AND check_in = $2 AND guest_name = $3`
	err := r.db.QueryRowContext(ctx, query, room, checkIn, guestName).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking duplicate submission: %w", err)
	}
	return true, nil
}

// Create inserts the reservation and returns it with the storage-assigned id.
// Constraint violations raised by concurrent writers map to the same domain
// errors the pre-checks produce.
func (r *reservationRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("beginning insert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO reservations (room_id, guest_name, guest_phone, guest_count, check_in, check_out, daily_rate, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, query,
		res.Room, res.GuestName, res.GuestPhone, res.GuestCount,
		res.CheckIn, res.CheckOut, res.DailyRate, res.TotalAmount,
	).Scan(&res.ID, &res.CreatedAt)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return res, mapped
		}
		return res, fmt.Errorf("inserting reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("committing reservation: %w", err)
	}
	return res, nil
}

// mapConstraintError translates postgres constraint violations into domain
// errors, or returns nil when the error is not a recognised violation.
func mapConstraintError(err error) error {
	var pqerr *pq.Error
	if !errors.As(err, &pqerr) {
		return nil
	}
	switch string(pqerr.Code) {
	case exclusionViolation:
		return entities.ErrRoomOccupied
	case uniqueViolation:
		return entities.ErrDuplicateSubmission
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.Reservation, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	defer rows.Close()

	var result []entities.Reservation
	for rows.Next() {
		var res entities.Reservation
		err := rows.Scan(&res.ID, &res.Room, &res.GuestName, &res.GuestPhone, &res.GuestCount,
			&res.CheckIn, &res.CheckOut, &res.DailyRate, &res.TotalAmount, &res.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	return result, nil
}

// buildListQuery translates the filter into a parameterized statement. Values
// are never interpolated into the query text.
func buildListQuery(filter entities.ListFilter) (string, []interface{}) {
	query := `
		SELECT id, room_id, guest_name, guest_phone, guest_count, check_in, check_out, daily_rate, total_amount, created_at
		FROM reservations
		WHERE 1=1`

	var args []interface{}
	argIdx := 1

	if filter.Room != nil {
		query += fmt.Sprintf(" AND room_id = $%d", argIdx)
		args = append(args, *filter.Room)
		argIdx++
	}

	switch filter.Scope {
	case entities.ScopeActive:
		query += fmt.Sprintf(" AND check_out >= $%d ORDER BY check_in ASC", argIdx)
		args = append(args, filter.Today)
	case entities.ScopeHistory:
		query += fmt.Sprintf(" AND check_out < $%d ORDER BY check_out DESC", argIdx)
		args = append(args, filter.Today)
	}

	return query, args
}

// Delete removes the reservation row. A missing id is not an error here;
// the caller decides what zero rows affected means.
func (r *reservationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting reservation: %w", err)
	}
	return res.RowsAffected()
}

// OccupiedRooms returns the rooms with at least one reservation overlapping
// [windowStart, windowEnd), across all rooms.
func (r *reservationRepository) OccupiedRooms(ctx context.Context, windowStart, windowEnd time.Time) (map[int]bool, error) {
	query := `SELECT DISTINCT room_id FROM reservations WHERE check_in < $1 AND check_out > $2`
	rows, err := r.db.QueryContext(ctx, query, windowEnd, windowStart)
	if err != nil {
		return nil, fmt.Errorf("querying occupied rooms: %w", err)
	}
	defer rows.Close()

	occupied := make(map[int]bool)
	for rows.Next() {
		var room int
		if err := rows.Scan(&room); err != nil {
			return nil, fmt.Errorf("scanning occupied room: %w", err)
		}
		occupied[room] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("querying occupied rooms: %w", err)
	}
	return occupied, nil
}
