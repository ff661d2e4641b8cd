package middleware

import (
	"net/http"
	"strings"

	"studydeck/internal/auth"
	"studydeck/internal/httputil"
)

// openPaths are served without a token (health probes, websocket handshake
// carries its token as a query parameter and is checked below).
var openPaths = map[string]bool{
	"/health": true,
}

// AuthMiddleware verifies the Bearer token on every request and injects the
// authenticated user's id and email into the request context. Requests
// without a valid token are rejected; the hosted auth provider owns all
// session state, so there is no refresh or retry here.
func AuthMiddleware(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if openPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, claims.GetUserID(), claims.Email))
		})
	}
}

// bearerToken extracts the token from the Authorization header, falling back
// to the access_token query parameter for websocket clients, which cannot
// set headers from the browser API.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}
