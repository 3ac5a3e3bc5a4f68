package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mcmonitor/internal/api/apierr"
	"github.com/mcoot/mcmonitor/internal/middleware"
)

// Recovery turns a panic in an API handler into a JSON 500 carrying the
// request id
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewPanicError(middleware.RequestID(r.Context())))
	})
}
