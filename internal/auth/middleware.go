package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/elishalema/portfolio-service/internal/web"
)

type ctxKey struct{}

// SubjectFromContext returns the account id carried by a verified token, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ctxKey{}).(string)
	return sub, ok
}

// Middleware returns the bearer gate applied to every mutating route.
// Missing token and unverifiable token are both 401, with distinct messages.
func Middleware(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := ""
			if strings.HasPrefix(strings.ToLower(header), "bearer ") {
				token = strings.TrimSpace(header[len("bearer "):])
			}
			if token == "" {
				web.Message(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}
			sub, err := svc.VerifyToken(token)
			if err != nil {
				web.Message(w, http.StatusUnauthorized, "Token is not valid")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sub)))
		})
	}
}
