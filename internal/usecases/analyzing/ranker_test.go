package analyzing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

func actor(actorID, name string, total float64, count int) *domain.AggregatedActor {
	return &domain.AggregatedActor{
		ActorID:        actorID,
		DisplayName:    name,
		MetricTotal:    decimal.NewFromFloat(total),
		SecondaryCount: count,
	}
}

func TestRankByTotal(t *testing.T) {
	t.Run("Ordena por total decrescente com posições densas 1..k", func(t *testing.T) {
		actors := []*domain.AggregatedActor{
			actor("B", "bob", 50, 1),
			actor("A", "alice", 125, 2),
			actor("C", "carol", 75, 3),
		}

		entries := RankByTotal(actors, 0)

		require.Len(t, entries, 3)
		assert.Equal(t, []string{"A", "C", "B"}, []string{entries[0].ActorID, entries[1].ActorID, entries[2].ActorID})
		for i, entry := range entries {
			assert.Equal(t, i+1, entry.Rank)
		}
	})

	t.Run("Empates mantêm a ordem de entrada e recebem posições distintas", func(t *testing.T) {
		actors := []*domain.AggregatedActor{
			actor("A", "alice", 100, 1),
			actor("B", "bob", 100, 1),
			actor("C", "carol", 100, 1),
		}

		entries := RankByTotal(actors, 0)

		require.Len(t, entries, 3)
		assert.Equal(t, "A", entries[0].ActorID)
		assert.Equal(t, "B", entries[1].ActorID)
		assert.Equal(t, "C", entries[2].ActorID)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, 3, entries[2].Rank)
	})

	t.Run("Limite corta nas primeiras posições", func(t *testing.T) {
		actors := []*domain.AggregatedActor{
			actor("A", "a", 30, 1),
			actor("B", "b", 20, 1),
			actor("C", "c", 10, 1),
		}

		entries := RankByTotal(actors, 2)

		require.Len(t, entries, 2)
		assert.Equal(t, "A", entries[0].ActorID)
		assert.Equal(t, "B", entries[1].ActorID)
	})

	t.Run("Não modifica o slice de entrada", func(t *testing.T) {
		actors := []*domain.AggregatedActor{
			actor("B", "b", 10, 1),
			actor("A", "a", 20, 1),
		}

		RankByTotal(actors, 0)

		assert.Equal(t, "B", actors[0].ActorID)
		assert.Equal(t, "A", actors[1].ActorID)
	})

	t.Run("Cada entrada carrega o próprio total", func(t *testing.T) {
		actors := []*domain.AggregatedActor{
			actor("A", "a", 20, 1),
			actor("B", "b", 10, 1),
		}

		entries := RankByTotal(actors, 0)

		require.NotNil(t, entries[0].MetricTotal)
		require.NotNil(t, entries[1].MetricTotal)
		assert.True(t, entries[0].MetricTotal.Equal(decimal.NewFromInt(20)))
		assert.True(t, entries[1].MetricTotal.Equal(decimal.NewFromInt(10)))
	})
}

func TestRankByCount(t *testing.T) {
	t.Run("Ordena por contagem decrescente sem métrica monetária", func(t *testing.T) {
		actors := []*domain.AggregatedActor{
			actor("A", "alice", 0, 5),
			actor("B", "bob", 0, 12),
		}

		entries := RankByCount(actors, 0)

		require.Len(t, entries, 2)
		assert.Equal(t, "B", entries[0].ActorID)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Nil(t, entries[0].MetricTotal)
		assert.Equal(t, "A", entries[1].ActorID)
		assert.Equal(t, 2, entries[1].Rank)
	})
}
