package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/movie-ticket-booking/api"
	"github.com/redis/go-redis/v9"
)

// The movie catalog is static reference data, so listings are served
// through a short-lived redis cache. The booking path never reads from
// the cache; the database stays the single arbiter of seat state.
const movieCacheTTL = time.Minute

func movieCacheKey(term string) string {
	return "movies:" + term
}

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	term := r.URL.Query().Get("title")

	if resp, ok := app.cachedMovieList(r.Context(), term); ok {
		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	movies, err := app.movieRepo.GetAll(r.Context(), term)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: make([]api.Movie, len(movies)),
	}
	for i, m := range movies {
		resp.Movies[i] = api.Movie{Id: m.ID, Title: m.Title}
	}

	app.cacheMovieList(r.Context(), logger, term, resp)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) cachedMovieList(ctx context.Context, term string) (api.MovieListResponse, bool) {
	var resp api.MovieListResponse

	if app.redis == nil {
		return resp, false
	}

	cached, err := app.redis.Get(ctx, movieCacheKey(term)).Bytes()
	if err != nil {
		return resp, false
	}

	if err := json.Unmarshal(cached, &resp); err != nil {
		return resp, false
	}

	return resp, true
}

// cacheMovieList stores the listing best-effort; a failing cache must
// never fail the request.
func (app *Application) cacheMovieList(ctx context.Context, logger *slog.Logger, term string, resp api.MovieListResponse) {
	if app.redis == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}

	err = app.redis.Set(ctx, movieCacheKey(term), payload, movieCacheTTL).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Warn("failed to cache movie listing", "error", err)
	}
}

func (app *Application) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "movieId"))
	if err != nil || movieID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movie ID must be greater than zero"))
		return
	}

	showtimes, err := app.showtimeRepo.GetByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeList(showtimes), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
