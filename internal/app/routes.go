package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	appmiddleware "github.com/metinatakli/movie-ticket-booking/internal/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(otelchi.Middleware("movie-ticket-booking", otelchi.WithChiRoutes(r)))
	r.Use(appmiddleware.RecoverPanic)
	r.Use(app.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.GetHealth)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.GetMovies)
			r.Get("/{movieId}/showtimes", app.GetShowtimesByMovie)
		})

		r.Route("/theaters", func(r chi.Router) {
			r.Get("/", app.GetTheaters)
			r.Get("/{theaterId}/showtimes", app.GetShowtimesByTheater)
		})

		r.Get("/showtimes/{showtimeId}/seats", app.GetAvailableSeats)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", app.CreateBooking)
			r.Delete("/{confirmationId}", app.CancelBooking)
		})
	})

	return r
}
