package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/authenticating"
)

type contextKey string

const (
	// ContextKeySession guarda as claims decodificadas do token do iframe
	ContextKeySession contextKey = "session"
)

// AuthMiddleware exige o token de sessão da plataforma em todas as rotas,
// exceto o healthcheck. O token chega como bearer opaco injetado pelo
// iframe do dashboard.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
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

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
