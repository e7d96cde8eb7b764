package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger attaches a logger carrying the request id to the
// request context so handlers can log with request correlation.
func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
