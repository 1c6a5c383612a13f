package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/GlebRadaev/paytrace/pkg/utils"
)

const APIKeyHeader = "X-API-Key"

// OperatorMiddleware guards operator routes with a static key sent either as X-API-Key or as a
// bearer token. An empty key leaves the routes open, which is only meant for local runs.
func OperatorMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			provided := r.Header.Get(APIKeyHeader)
			if provided == "" {
				provided = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
