package drawing

import (
	"math/rand"
	"time"

	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// RandomSource é a fonte de aleatoriedade do sorteio. A interface existe
// para os testes injetarem uma sequência determinística.
type RandomSource interface {
	// Float64 retorna o próximo número em [0, 1)
	Float64() float64
}

type mathRandSource struct {
	rnd *rand.Rand
}

// NewRandomSource cria a fonte padrão, semeada pelo relógio
func NewRandomSource() RandomSource {
	return &mathRandSource{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *mathRandSource) Float64() float64 {
	return s.rnd.Float64()
}

// BuildPool monta o pool de candidatos: a união (não concatenação) dos
// leaderboards de origem, deduplicada por actorId na ordem em que os
// boards são informados, limitada a poolCap entradas. O teto mantém o
// sorteio "uniforme sobre os atores em destaque" e limita memória.
func BuildPool(poolCap int, boards ...[]domain.LeaderboardEntry) []domain.LeaderboardEntry {
	seen := make(map[string]struct{})
	pool := make([]domain.LeaderboardEntry, 0)

	for _, board := range boards {
		for _, entry := range board {
			if _, dup := seen[entry.ActorID]; dup {
				continue
			}

			if poolCap > 0 && len(pool) >= poolCap {
				return pool
			}

			seen[entry.ActorID] = struct{}{}
			pool = append(pool, entry)
		}
	}

	return pool
}
