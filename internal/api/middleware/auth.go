package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
)

const msgUnauthorized = "acesso não autorizado"

// Logger is the logging interface used by the middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth guards the admin subrouter with a static bearer token
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			provided, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Unauthorized admin request from %s", r.Method, r.URL.Path, handlers.ClientIP(r))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
