// ABOUTME: HTTP middleware for bearer token authentication
// ABOUTME: Extracts the token from the Authorization header and adds the principal to context

package auth

import (
	"errors"
	"net/http"
	"strings"
)

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// writeUnauthorized writes the single externally visible authentication
// failure: 401 with a WWW-Authenticate challenge and a generic JSON body.
// Every failure mode (missing header, bad token, vanished subject) produces
// this same response so the caller can't tell which check failed.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"could not validate credentials"}`))
}

// RequireAuth creates an HTTP middleware that authenticates the bearer token
// and adds the resolved principal to the request context. Storage failures
// return 503 rather than 401 so clients don't treat an outage as a bad token.
func RequireAuth(service *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				writeUnauthorized(w)
				return
			}

			principal, err := service.Authenticate(r.Context(), token)
			if errors.Is(err, ErrUnauthorized) {
				writeUnauthorized(w)
				return
			}
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"service unavailable"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
