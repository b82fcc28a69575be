package analyzing

import (
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// As agregações rodam em uma única passada sobre a entrada (O(n)).
// O slice de saída preserva a ordem de primeira aparição de cada ator:
// o Ranker depende dessa ordem para desempate estável. O nome exibido é
// sempre o do registro mais recente processado para a chave (last seen
// wins), já que o mesmo ator pode reaparecer com grafias diferentes.

// AggregateSpend soma o total gasto por pagador.
// SecondaryCount conta os pagamentos, inclusive os com valor coagido a zero.
func AggregateSpend(payments []*domain.NormalizedPayment) []*domain.AggregatedActor {
	index := make(map[string]int, len(payments))
	actors := make([]*domain.AggregatedActor, 0, len(payments))

	for _, payment := range payments {
		i, seen := index[payment.ActorID]
		if !seen {
			i = len(actors)
			index[payment.ActorID] = i
			actors = append(actors, &domain.AggregatedActor{ActorID: payment.ActorID})
		}

		actor := actors[i]
		actor.DisplayName = displayName(payment.ActorName, actor.DisplayName)
		actor.MetricTotal = actor.MetricTotal.Add(payment.Amount)
		actor.SecondaryCount++
	}

	return actors
}

// AggregateActivity soma a contagem de atividades por membro.
// Apenas associações com status active contribuem; as demais são ignoradas
// por completo (não criam entrada zerada).
func AggregateActivity(memberships []*domain.NormalizedMembership) []*domain.AggregatedActor {
	index := make(map[string]int, len(memberships))
	actors := make([]*domain.AggregatedActor, 0, len(memberships))

	for _, membership := range memberships {
		if membership.Status != domain.MembershipStatusActive {
			continue
		}

		i, seen := index[membership.ActorID]
		if !seen {
			i = len(actors)
			index[membership.ActorID] = i
			actors = append(actors, &domain.AggregatedActor{ActorID: membership.ActorID})
		}

		actor := actors[i]
		actor.DisplayName = displayName(membership.ActorName, actor.DisplayName)
		actor.SecondaryCount += membership.ActivityCount
	}

	return actors
}

// AggregateAffiliateEarnings soma os valores dos pagamentos atribuídos a um
// afiliado, agrupados pelo id do afiliado. A atribuição é derivada
// inteiramente dos pagamentos: não existe recurso dedicado na API.
func AggregateAffiliateEarnings(payments []*domain.NormalizedPayment) []*domain.AggregatedActor {
	index := make(map[string]int)
	actors := make([]*domain.AggregatedActor, 0)

	for _, payment := range payments {
		if payment.AffiliateID == nil || *payment.AffiliateID == "" {
			continue
		}

		affiliateID := *payment.AffiliateID

		i, seen := index[affiliateID]
		if !seen {
			i = len(actors)
			index[affiliateID] = i
			actors = append(actors, &domain.AggregatedActor{ActorID: affiliateID})
		}

		actor := actors[i]
		if payment.AffiliateName != nil {
			actor.DisplayName = displayName(*payment.AffiliateName, actor.DisplayName)
		}
		actor.MetricTotal = actor.MetricTotal.Add(payment.Amount)
		actor.SecondaryCount++
	}

	return actors
}

// displayName aplica a regra last-seen-wins preservando o nome anterior
// quando o registro atual não traz nenhum
func displayName(current, previous string) string {
	if current != "" {
		return current
	}
	return previous
}
