package app

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movie-ticket-booking/api"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

func (app *Application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheaterList(theaters), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimesByTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, err := strconv.Atoi(chi.URLParam(r, "theaterId"))
	if err != nil || theaterID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("theater ID must be greater than zero"))
		return
	}

	showtimes, err := app.showtimeRepo.GetByTheater(r.Context(), theaterID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeList(showtimes), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheaterList(theaters []domain.Theater) api.TheaterListResponse {
	resp := api.TheaterListResponse{
		Theaters: make([]api.Theater, len(theaters)),
	}

	for i, t := range theaters {
		screens := make([]api.Screen, len(t.Screens))
		for j, s := range t.Screens {
			screens[j] = api.Screen{Id: s.ID, Label: s.Label}
		}

		resp.Theaters[i] = api.Theater{
			Id:      t.ID,
			Name:    t.Name,
			Screens: screens,
		}
	}

	return resp
}
