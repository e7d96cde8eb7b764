package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reservation is one booking transaction: a non-empty seat set held on
// a single showtime, created and destroyed as a unit. ConfirmationID
// is the opaque client-facing identity; ID is storage-internal.
type Reservation struct {
	ID             int64
	ConfirmationID uuid.UUID
	ShowtimeID     int
	SeatIDs        []string
	CreatedAt      time.Time
}

// ReservationDetail is what a successful booking hands back to the
// caller: the confirmation id plus the descriptive fields of the
// showtime it was made for.
type ReservationDetail struct {
	ConfirmationID uuid.UUID
	ShowtimeID     int
	MovieTitle     string
	TheaterName    string
	ScreenLabel    string
	ShowStartTime  time.Time
	SeatIDs        []string
	CreatedAt      time.Time
}

// ShowtimeAvailability is the read-only projection of one showtime's
// free seats, in the canonical row-major order of the seat grid.
type ShowtimeAvailability struct {
	ShowtimeID     int
	TotalSeats     int
	AvailableCount int
	AvailableSeats []string
}

type ReservationRepository interface {
	// Create persists the reservation together with one reserved-seat
	// row per requested seat, checking for conflicts against live
	// reservations on the same showtime. The check and the insert are
	// one atomic unit: on conflict it returns *SeatsUnavailableError
	// and writes nothing. On success it fills in ID and CreatedAt.
	Create(ctx context.Context, reservation *Reservation) error

	// DeleteByConfirmationID removes the reservation and all of its
	// reserved seats in one atomic step. Returns ErrReservationNotFound
	// when no live reservation has the given confirmation id.
	DeleteByConfirmationID(ctx context.Context, confirmationID uuid.UUID) error

	// GetSeatIDsByShowtime returns the seat ids currently held by any
	// live reservation for the showtime, read at a single consistent
	// point in time.
	GetSeatIDsByShowtime(ctx context.Context, showtimeID int) ([]string, error)
}
