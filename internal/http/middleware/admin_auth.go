package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

const adminKeyHeader = "X-Admin-Key"

// RequireAdminKey gates the dashboard endpoints behind a shared secret,
// read from the X-Admin-Key header or a Bearer token.
//
// Outside production the gate is bypassed entirely to ease local work.
// In production an empty secret fails closed: every request is rejected.
func RequireAdminKey(secret, env string, logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	production := strings.EqualFold(env, "production")
	if !production {
		logger.Warn("admin auth bypassed: non-production environment", "env", env)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !production {
				next.ServeHTTP(w, r)
				return
			}
			if secret == "" {
				logger.Error("admin auth rejected: no admin key configured")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			provided := strings.TrimSpace(r.Header.Get(adminKeyHeader))
			if provided == "" {
				auth := r.Header.Get("Authorization")
				if strings.HasPrefix(auth, "Bearer ") {
					provided = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
				}
			}

			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
