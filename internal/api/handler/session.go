package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-leaderboard-api/pkg/apiErrors"
	"github.com/vfg2006/creator-leaderboard-api/pkg/middleware"
)

// GetMe resolve a sessão do token injetado pelo iframe e devolve a
// identidade usada para escopar as consultas
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		session, err := service.SessionFromClaims(claims)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(session); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta da sessão")
		}
	}
}

// writeSessionError traduz os erros de sessão para os códigos da API
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrNoCompany):
		apiErrors.WriteError(w, apiErrors.ErrNoCompany, "Sessão sem empresa resolvível", nil)
	case errors.Is(err, authenticating.ErrNoActorIdentity):
		apiErrors.WriteError(w, apiErrors.ErrNoActor, "Sessão sem identidade de ator", nil)
	case errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token de sessão expirado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão inválido", nil)
	}
}
