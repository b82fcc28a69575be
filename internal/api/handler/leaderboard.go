package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
	"github.com/vfg2006/creator-leaderboard-api/internal/scheduler"
	"github.com/vfg2006/creator-leaderboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-leaderboard-api/pkg/apiErrors"
	"github.com/vfg2006/creator-leaderboard-api/pkg/middleware"
)

// defaultBoardLimit é o corte padrão exibido pelo dashboard
const defaultBoardLimit = 25

// GetLeaderboard calcula o leaderboard da aba pedida, escopado pela
// empresa da sessão. Snapshots frescos do warmup respondem sem recálculo.
func GetLeaderboard(service analyzing.Analyzer, warmup *scheduler.LeaderboardWarmupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok || claims.CompanyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrNoCompany, "Sessão sem empresa resolvível", nil)
			return
		}

		tabParam := httprouter.ParamsFromContext(r.Context()).ByName("tab")
		tab, err := domain.ParseTab(tabParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidTab, "Aba de leaderboard inválida. Valores aceitos: spenders, affiliates, active", nil)
			return
		}

		rng, err := domain.ParseRange(r.URL.Query().Get("range"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Intervalo inválido. Valores aceitos: today, 7d, 30d, all", nil)
			return
		}

		limit := defaultBoardLimit
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Limite inválido: esperado inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		response, fromSnapshot := snapshotOrCompute(service, warmup, claims.CompanyID, tab, rng, limit)
		if response == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular leaderboard", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"company_id": claims.CompanyID,
			"tab":        string(tab),
			"range":      string(rng),
			"snapshot":   fromSnapshot,
		}).Debug("Leaderboard respondido")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do leaderboard")
		}
	}
}

func snapshotOrCompute(
	service analyzing.Analyzer,
	warmup *scheduler.LeaderboardWarmupService,
	companyID string,
	tab domain.Tab,
	rng domain.Range,
	limit int,
) (*domain.LeaderboardResponse, bool) {
	if warmup != nil {
		if snapshot, ok := warmup.Snapshot(companyID, tab, rng, limit); ok {
			return snapshot, true
		}
	}

	response, err := service.Leaderboard(companyID, tab, rng, limit)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"tab":        string(tab),
			"range":      string(rng),
			"error":      err.Error(),
		}).Error("Erro ao calcular leaderboard")
		return nil, false
	}

	return response, false
}
