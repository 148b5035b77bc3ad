package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dskvich/jarvis-assistant/pkg/api/response"
)

// TokenAuth guards the API with a static bearer token. An empty token
// disables the check.
func TokenAuth(token string) func(http.Handler) http.Handler {
	writer := response.JSONResponseWriter{}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writer.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
