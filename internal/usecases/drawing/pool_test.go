package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

func entry(actorID string) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{ActorID: actorID, Name: actorID}
}

func TestBuildPool(t *testing.T) {
	t.Run("União deduplicada por actorId na ordem dos boards", func(t *testing.T) {
		spenders := []domain.LeaderboardEntry{entry("A"), entry("B")}
		active := []domain.LeaderboardEntry{entry("B"), entry("C")}

		pool := BuildPool(200, spenders, active)

		require.Len(t, pool, 3)
		assert.Equal(t, "A", pool[0].ActorID)
		assert.Equal(t, "B", pool[1].ActorID)
		assert.Equal(t, "C", pool[2].ActorID)
	})

	t.Run("Teto do pool é respeitado", func(t *testing.T) {
		board := make([]domain.LeaderboardEntry, 10)
		for i := range board {
			board[i] = entry(string(rune('A' + i)))
		}

		pool := BuildPool(4, board)

		assert.Len(t, pool, 4)
	})

	t.Run("Boards vazios produzem pool vazio", func(t *testing.T) {
		pool := BuildPool(200, nil, []domain.LeaderboardEntry{})
		assert.Empty(t, pool)
	})

	t.Run("Ator presente nos dois boards entra uma única vez", func(t *testing.T) {
		board := []domain.LeaderboardEntry{entry("A")}

		pool := BuildPool(200, board, board)

		assert.Len(t, pool, 1)
	})
}
