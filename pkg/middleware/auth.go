package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gfvieira/metrics-dashboard-api/internal/usecases/sessioning"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionMiddleware garante que toda requisição de métricas chegou de um
// chamador autenticado. A verificação de identidade em si é responsabilidade
// do serviço de autenticação externo que emitiu o token.
func SessionMiddleware(verifier sessioning.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
