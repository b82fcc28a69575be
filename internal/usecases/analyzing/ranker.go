package analyzing

import (
	"sort"

	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// RankByTotal ordena os atores por MetricTotal decrescente e atribui
// posições densas 1..k pela posição de saída. A ordenação é estável:
// empates exatos mantêm a ordem de primeira aparição da agregação e ainda
// assim recebem posições distintas (ranking posicional, não de competição).
//
// limit > 0 corta a saída nas primeiras limit entradas; o corte é sempre
// decisão do chamador, nunca um padrão escondido aqui.
func RankByTotal(actors []*domain.AggregatedActor, limit int) []domain.LeaderboardEntry {
	ordered := make([]*domain.AggregatedActor, len(actors))
	copy(ordered, actors)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MetricTotal.GreaterThan(ordered[j].MetricTotal)
	})

	entries := make([]domain.LeaderboardEntry, 0, len(ordered))
	for i, actor := range ordered {
		if limit > 0 && i >= limit {
			break
		}

		total := actor.MetricTotal
		entries = append(entries, domain.LeaderboardEntry{
			Rank:           i + 1,
			ActorID:        actor.ActorID,
			Name:           actor.DisplayName,
			MetricTotal:    &total,
			SecondaryCount: actor.SecondaryCount,
		})
	}

	return entries
}

// RankByCount ordena por SecondaryCount decrescente, para o leaderboard de
// membros ativos, que não tem métrica monetária (MetricTotal fica omitido)
func RankByCount(actors []*domain.AggregatedActor, limit int) []domain.LeaderboardEntry {
	ordered := make([]*domain.AggregatedActor, len(actors))
	copy(ordered, actors)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SecondaryCount > ordered[j].SecondaryCount
	})

	entries := make([]domain.LeaderboardEntry, 0, len(ordered))
	for i, actor := range ordered {
		if limit > 0 && i >= limit {
			break
		}

		entries = append(entries, domain.LeaderboardEntry{
			Rank:           i + 1,
			ActorID:        actor.ActorID,
			Name:           actor.DisplayName,
			SecondaryCount: actor.SecondaryCount,
		})
	}

	return entries
}
