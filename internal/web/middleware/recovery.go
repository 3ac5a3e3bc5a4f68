package middleware

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/mcoot/mcmonitor/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface.
// It answers with a static HTML error page quoting the request id.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head><title>Error | MC Monitor</title></head>
<body>
<h1>Something went wrong</h1>
<p>Please try again later. Reference: <code>%s</code></p>
<p><a href="/">Return to home</a></p>
</body>
</html>`, html.EscapeString(middleware.RequestID(r.Context())))
}
