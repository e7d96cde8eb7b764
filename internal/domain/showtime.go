package domain

import (
	"context"
	"time"
)

// Showtime is a screening of a movie on a screen at a point in time.
// Showtimes are immutable reference data as far as the booking core is
// concerned; reservations refer to them but never change them.
type Showtime struct {
	ID          int
	MovieID     int
	MovieTitle  string
	ScreenID    int
	ScreenLabel string
	TheaterID   int
	TheaterName string
	StartTime   time.Time
}

type ShowtimeRepository interface {
	// GetByID returns the showtime descriptor, or ErrRecordNotFound.
	GetByID(ctx context.Context, id int) (*Showtime, error)
	GetByMovie(ctx context.Context, movieID int) ([]Showtime, error)
	GetByTheater(ctx context.Context, theaterID int) ([]Showtime, error)
}
