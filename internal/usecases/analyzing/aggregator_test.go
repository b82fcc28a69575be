package analyzing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

func payment(actorID, actorName string, amount float64) *domain.NormalizedPayment {
	return &domain.NormalizedPayment{
		ActorID:   actorID,
		ActorName: actorName,
		Amount:    decimal.NewFromFloat(amount),
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregateSpend(t *testing.T) {
	t.Run("Pagamentos intercalados agrupam por ator na ordem de primeira aparição", func(t *testing.T) {
		payments := []*domain.NormalizedPayment{
			payment("A", "alice", 100),
			payment("B", "bob", 50),
			payment("A", "alice", 25),
		}

		actors := AggregateSpend(payments)

		require.Len(t, actors, 2)
		assert.Equal(t, "A", actors[0].ActorID)
		assert.True(t, actors[0].MetricTotal.Equal(decimal.NewFromInt(125)))
		assert.Equal(t, 2, actors[0].SecondaryCount)
		assert.Equal(t, "B", actors[1].ActorID)
		assert.True(t, actors[1].MetricTotal.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, 1, actors[1].SecondaryCount)
	})

	t.Run("Pagamento com valor coagido a zero conta mas não soma", func(t *testing.T) {
		payments := []*domain.NormalizedPayment{
			payment("A", "alice", 100),
			payment("A", "alice", 0),
		}

		actors := AggregateSpend(payments)

		require.Len(t, actors, 1)
		assert.True(t, actors[0].MetricTotal.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 2, actors[0].SecondaryCount)
	})

	t.Run("Nome exibido é o do último registro processado", func(t *testing.T) {
		payments := []*domain.NormalizedPayment{
			payment("A", "alice_old", 10),
			payment("A", "alice_new", 10),
		}

		actors := AggregateSpend(payments)

		require.Len(t, actors, 1)
		assert.Equal(t, "alice_new", actors[0].DisplayName)
	})

	t.Run("Nome vazio não apaga o nome já conhecido", func(t *testing.T) {
		payments := []*domain.NormalizedPayment{
			payment("A", "alice", 10),
			payment("A", "", 10),
		}

		actors := AggregateSpend(payments)

		require.Len(t, actors, 1)
		assert.Equal(t, "alice", actors[0].DisplayName)
	})

	t.Run("Soma dos totais é igual à soma da entrada", func(t *testing.T) {
		payments := []*domain.NormalizedPayment{
			payment("A", "a", 10.10),
			payment("B", "b", 20.20),
			payment("A", "a", 30.30),
			payment("C", "c", 0),
		}

		actors := AggregateSpend(payments)

		total := decimal.Zero
		for _, actor := range actors {
			total = total.Add(actor.MetricTotal)
		}
		assert.True(t, total.Equal(decimal.NewFromFloat(60.60)))
	})
}

func TestAggregateActivity(t *testing.T) {
	membership := func(actorID, name string, status domain.MembershipStatus, count int) *domain.NormalizedMembership {
		return &domain.NormalizedMembership{
			ActorID:       actorID,
			ActorName:     name,
			Status:        status,
			ActivityCount: count,
		}
	}

	t.Run("Apenas associações ativas contribuem", func(t *testing.T) {
		memberships := []*domain.NormalizedMembership{
			membership("A", "alice", domain.MembershipStatusActive, 10),
			membership("B", "bob", domain.MembershipStatusOther, 50),
			membership("A", "alice", domain.MembershipStatusActive, 5),
		}

		actors := AggregateActivity(memberships)

		// B tem contagem alta mas status inativo: não aparece nem zerado
		require.Len(t, actors, 1)
		assert.Equal(t, "A", actors[0].ActorID)
		assert.Equal(t, 15, actors[0].SecondaryCount)
	})

	t.Run("Entrada vazia produz agregado vazio", func(t *testing.T) {
		actors := AggregateActivity(nil)
		assert.Empty(t, actors)
	})
}

func TestAggregateAffiliateEarnings(t *testing.T) {
	affiliatePayment := func(actorID string, amount float64, affiliateID, affiliateName string) *domain.NormalizedPayment {
		p := payment(actorID, "buyer", amount)
		if affiliateID != "" {
			p.AffiliateID = &affiliateID
			p.AffiliateName = &affiliateName
		}
		return p
	}

	t.Run("Agrupa pelo id do afiliado, ignorando pagamentos sem atribuição", func(t *testing.T) {
		payments := []*domain.NormalizedPayment{
			affiliatePayment("u_1", 100, "aff_1", "carol"),
			affiliatePayment("u_2", 40, "", ""),
			affiliatePayment("u_3", 60, "aff_1", "carol"),
			affiliatePayment("u_4", 10, "aff_2", "dave"),
		}

		actors := AggregateAffiliateEarnings(payments)

		require.Len(t, actors, 2)
		assert.Equal(t, "aff_1", actors[0].ActorID)
		assert.Equal(t, "carol", actors[0].DisplayName)
		assert.True(t, actors[0].MetricTotal.Equal(decimal.NewFromInt(160)))
		assert.Equal(t, 2, actors[0].SecondaryCount)
		assert.Equal(t, "aff_2", actors[1].ActorID)
	})
}
