package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/metinatakli/movie-ticket-booking/api"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	reservation, err := app.bookings.CreateReservation(r.Context(), input.ShowtimeId, input.SeatIds)
	if err != nil {
		var invalidErr *domain.InvalidSeatsError
		var unavailableErr *domain.SeatsUnavailableError

		switch {
		case errors.Is(err, domain.ErrShowtimeNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.As(err, &invalidErr):
			app.badRequestResponse(w, r, invalidErr)
		case errors.As(err, &unavailableErr):
			logger.Warn("booking conflict",
				"showtime_id", input.ShowtimeId,
				"conflicting_seats", unavailableErr.SeatIDs,
			)
			app.conflictResponse(w, r, unavailableErr)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("reservation created",
		"confirmation_id", reservation.ConfirmationID,
		"showtime_id", reservation.ShowtimeID,
		"seat_count", len(reservation.SeatIDs),
	)

	resp := toReservationResponse(reservation)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	confirmationID, err := uuid.Parse(chi.URLParam(r, "confirmationId"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid confirmation ID"))
		return
	}

	err = app.bookings.CancelReservation(r.Context(), confirmationID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			app.notFoundResponseWithErr(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("reservation cancelled", "confirmation_id", confirmationID)

	w.WriteHeader(http.StatusNoContent)
}

func toReservationResponse(reservation *domain.ReservationDetail) api.ReservationResponse {
	return api.ReservationResponse{
		ConfirmationId: reservation.ConfirmationID,
		ShowtimeId:     reservation.ShowtimeID,
		MovieTitle:     reservation.MovieTitle,
		TheaterName:    reservation.TheaterName,
		ScreenLabel:    reservation.ScreenLabel,
		ShowDateTime:   reservation.ShowStartTime,
		SeatIds:        reservation.SeatIDs,
		CreatedAt:      reservation.CreatedAt,
	}
}
