package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"studydeck/internal/httputil"

	"github.com/gorilla/websocket"
)

// Recovery middleware recovers from panics and returns a 500 error
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
						"method", r.Method,
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)

					// A hijacked websocket connection (the todo live feed)
					// cannot take an HTTP error response anymore
					if websocket.IsWebSocketUpgrade(r) {
						return
					}

					httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
