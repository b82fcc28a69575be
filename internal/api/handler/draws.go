package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/drawing"
	"github.com/vfg2006/creator-leaderboard-api/pkg/apiErrors"
	"github.com/vfg2006/creator-leaderboard-api/pkg/middleware"
)

type drawRequest struct {
	Range string `json:"range"`
}

// DrawWinner sorteia um vencedor uniforme entre os destaques dos
// leaderboards e registra o sorteio no histórico da empresa
func DrawWinner(drawer drawing.Drawer, authService authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
			return
		}

		session, err := authService.SessionFromClaims(claims)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		// Corpo vazio assume o intervalo "all"
		var request drawRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		rng, err := domain.ParseRange(request.Range)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Intervalo inválido. Valores aceitos: today, 7d, 30d, all", nil)
			return
		}

		response, err := drawer.DrawWinner(session, rng)
		if err != nil {
			if errors.Is(err, drawing.ErrEmptyPool) {
				apiErrors.WriteError(w, apiErrors.ErrEmptyPool, "Nenhum candidato elegível para o sorteio no intervalo", nil)
				return
			}

			logrus.WithFields(logrus.Fields{
				"company_id": session.CompanyID,
				"error":      err.Error(),
			}).Error("Erro ao executar sorteio")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar sorteio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do sorteio")
		}
	}
}

// ListDraws retorna o histórico de sorteios da empresa da sessão
func ListDraws(drawer drawing.Drawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok || claims.CompanyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrNoCompany, "Sessão sem empresa resolvível", nil)
			return
		}

		draws, err := drawer.ListDraws(claims.CompanyID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": claims.CompanyID,
				"error":      err.Error(),
			}).Error("Erro ao listar sorteios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar sorteios", nil)
			return
		}

		if draws == nil {
			draws = []*domain.Draw{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(draws); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do histórico de sorteios")
		}
	}
}
