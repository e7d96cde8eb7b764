package app

import (
	"log/slog"
	"net/http"

	"github.com/metinatakli/movie-ticket-booking/internal/jsonutil"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

type contextKey string

const loggerContextKey = contextKey("logger")

// contextGetLogger returns the request-scoped logger placed in the
// context by requestLogger, falling back to the application logger.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
