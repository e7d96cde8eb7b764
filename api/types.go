// Package api defines the request and response shapes of the HTTP
// surface. These are transport types only; handlers map them to and
// from the domain records.
package api

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateBookingRequest struct {
	ShowtimeId int      `json:"showtimeId" validate:"required,gt=0"`
	SeatIds    []string `json:"seatIds" validate:"required,min=1,dive,required"`
}

type ReservationResponse struct {
	ConfirmationId uuid.UUID `json:"confirmationId"`
	ShowtimeId     int       `json:"showtimeId"`
	MovieTitle     string    `json:"movieTitle"`
	TheaterName    string    `json:"theaterName"`
	ScreenLabel    string    `json:"screenLabel"`
	ShowDateTime   time.Time `json:"showDateTime"`
	SeatIds        []string  `json:"seatIds"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AvailableSeatsResponse struct {
	ShowtimeId     int      `json:"showtimeId"`
	TotalSeats     int      `json:"totalSeats"`
	AvailableCount int      `json:"availableCount"`
	AvailableSeats []string `json:"availableSeats"`
}

type Movie struct {
	Id    int    `json:"id"`
	Title string `json:"title"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type Screen struct {
	Id    int    `json:"id"`
	Label string `json:"label"`
}

type Theater struct {
	Id      int      `json:"id"`
	Name    string   `json:"name"`
	Screens []Screen `json:"screens"`
}

type TheaterListResponse struct {
	Theaters []Theater `json:"theaters"`
}

type Showtime struct {
	Id          int       `json:"id"`
	MovieId     int       `json:"movieId"`
	MovieTitle  string    `json:"movieTitle"`
	ScreenId    int       `json:"screenId"`
	ScreenLabel string    `json:"screenLabel"`
	TheaterId   int       `json:"theaterId"`
	TheaterName string    `json:"theaterName"`
	StartTime   time.Time `json:"startTime"`
}

type ShowtimeListResponse struct {
	Showtimes []Showtime `json:"showtimes"`
}
