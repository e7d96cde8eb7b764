package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrShowtimeNotFound    = errors.New("showtime not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// InvalidSeatsError rejects a booking request whose seat ids are
// malformed or repeated. Both cases are caller input errors and are
// detected before any store access.
type InvalidSeatsError struct {
	// SeatIDs lists the malformed ids. Empty for duplicate requests,
	// which are rejected as a whole.
	SeatIDs   []string
	Duplicate bool
}

func (e *InvalidSeatsError) Error() string {
	if e.Duplicate {
		return "duplicate seat ids in request"
	}

	return fmt.Sprintf("invalid seat ids: %s", strings.Join(e.SeatIDs, ", "))
}

// SeatsUnavailableError reports a booking conflict: one or more of the
// requested seats are already held by a live reservation for the same
// showtime. SeatIDs may be empty when the conflict was detected by the
// store's uniqueness constraint at commit time, in which case the
// losing seats cannot be named.
type SeatsUnavailableError struct {
	SeatIDs []string
}

func (e *SeatsUnavailableError) Error() string {
	if len(e.SeatIDs) == 0 {
		return "one or more of the selected seats were just reserved by someone else"
	}

	return fmt.Sprintf("seats already reserved: %s", strings.Join(e.SeatIDs, ", "))
}
