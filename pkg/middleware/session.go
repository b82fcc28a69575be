package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"github.com/vfg2006/creator-leaderboard-api/pkg/apiErrors"
)

// RequireCompany restringe a rota a sessões com empresa resolvível.
// Sem company_id não há como escopar as consultas de analytics, então a
// requisição nem chega ao pipeline.
func RequireCompany() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeySession).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
				return
			}

			if claims.CompanyID == "" {
				logrus.Warningf("Sessão sem empresa para o ator %s", claims.ActorID)
				apiErrors.WriteError(w, apiErrors.ErrNoCompany, "Sessão sem empresa resolvível", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
