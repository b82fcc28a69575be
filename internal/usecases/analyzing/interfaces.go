package analyzing

import (
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// Analyzer expõe os leaderboards calculados sob demanda.
// Todo o estado é efêmero e recalculado por consulta: nada de agregado é
// persistido.
type Analyzer interface {
	// Leaderboard calcula o leaderboard da aba no intervalo informado.
	// limit > 0 corta a saída nas primeiras limit posições.
	Leaderboard(companyID string, tab domain.Tab, rng domain.Range, limit int) (*domain.LeaderboardResponse, error)
}
