package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movie-ticket-booking/api"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

func (app *Application) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := strconv.Atoi(chi.URLParam(r, "showtimeId"))
	if err != nil || showtimeID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("showtime ID must be greater than zero"))
		return
	}

	availability, err := app.bookings.GetAvailableSeats(r.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrShowtimeNotFound) {
			app.notFoundResponseWithErr(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AvailableSeatsResponse{
		ShowtimeId:     availability.ShowtimeID,
		TotalSeats:     availability.TotalSeats,
		AvailableCount: availability.AvailableCount,
		AvailableSeats: availability.AvailableSeats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimeList(showtimes []domain.Showtime) api.ShowtimeListResponse {
	resp := api.ShowtimeListResponse{
		Showtimes: make([]api.Showtime, len(showtimes)),
	}

	for i, s := range showtimes {
		resp.Showtimes[i] = api.Showtime{
			Id:          s.ID,
			MovieId:     s.MovieID,
			MovieTitle:  s.MovieTitle,
			ScreenId:    s.ScreenID,
			ScreenLabel: s.ScreenLabel,
			TheaterId:   s.TheaterID,
			TheaterName: s.TheaterName,
			StartTime:   s.StartTime,
		}
	}

	return resp
}
