// Package analyzing implementa o pipeline de agregação de analytics:
// filtro de datas, normalização de registros brutos, agregação por ator
// e ranqueamento dos leaderboards.
package analyzing

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

var (
	// ErrMalformedRecord indica corrupção estrutural total: o registro não
	// é uma estrutura chaveada. É o único erro de normalização; campos
	// ausentes degradam para valores padrão.
	ErrMalformedRecord = errors.New("registro malformado")

	// ErrNoActorIdentity é a sentinela para registros sem identidade de
	// ator resolvível. O chamador descarta o registro; nunca fabricamos
	// um id sintético que poderia colidir entre registros.
	ErrNoActorIdentity = errors.New("registro sem identidade de ator resolvível")
)

// Tabelas de caminhos de fallback por campo-alvo. A API da Vendora renomeia
// e aninha campos entre versões; o primeiro caminho presente e não nulo
// vence. Adicionar um caminho alternativo é uma mudança de dados, não de
// lógica.
var (
	paymentFieldPaths = map[string][]string{
		"id":             {"id", "payment_id", "receipt_id"},
		"actor_id":       {"user.id", "user_id", "member.user.id", "membership.user_id"},
		"actor_name":     {"user.username", "user.name", "username", "member.user.username"},
		"amount":         {"final_amount", "subtotal", "amount", "usd_amount"},
		"currency":       {"currency", "settled_currency"},
		"product_id":     {"product.id", "product_id", "plan.product_id"},
		"product_name":   {"product.title", "product.name", "product_name"},
		"affiliate_id":   {"affiliate.id", "affiliate_id", "affiliate_user_id"},
		"affiliate_name": {"affiliate.username", "affiliate.name", "affiliate_username"},
		"created_at":     {"created_at", "paid_at", "settled_at", "timestamp"},
	}

	membershipFieldPaths = map[string][]string{
		"id":               {"id", "membership_id"},
		"actor_id":         {"user.id", "user_id", "member.user.id"},
		"actor_name":       {"user.username", "user.name", "username"},
		"product_id":       {"product.id", "product_id", "plan.product_id"},
		"product_name":     {"product.title", "product.name", "product_name"},
		"status":           {"status", "state"},
		"last_activity_at": {"last_activity_at", "last_active_at", "updated_at", "created_at"},
		"activity_count":   {"activity_count", "actions_count", "engagements"},
	}
)

// PaymentDatePaths são os caminhos candidatos da data de criação de um
// pagamento, usados pelo filtro de intervalo antes da normalização
var PaymentDatePaths = paymentFieldPaths["created_at"]

// MembershipDatePaths são os caminhos candidatos da última atividade de
// uma associação
var MembershipDatePaths = membershipFieldPaths["last_activity_at"]

// Normalizer mapeia registros brutos da Vendora para o esquema canônico.
// O relógio é injetável para os testes congelarem o "agora" usado como
// padrão de timestamps ausentes.
type Normalizer struct {
	now func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NormalizePayment converte um registro bruto de pagamento.
// Retorna ErrNoActorIdentity quando nenhum caminho de identidade resolve;
// o chamador deve descartar o registro sem abortar o lote.
func (n *Normalizer) NormalizePayment(record domain.RawRecord) (*domain.NormalizedPayment, error) {
	if record == nil {
		return nil, ErrMalformedRecord
	}

	actorID := lookupString(record, paymentFieldPaths["actor_id"])
	if actorID == "" {
		return nil, ErrNoActorIdentity
	}

	payment := &domain.NormalizedPayment{
		ID:          lookupString(record, paymentFieldPaths["id"]),
		ActorID:     actorID,
		ActorName:   lookupString(record, paymentFieldPaths["actor_name"]),
		Amount:      lookupAmount(record, paymentFieldPaths["amount"]),
		Currency:    lookupString(record, paymentFieldPaths["currency"]),
		ProductID:   lookupString(record, paymentFieldPaths["product_id"]),
		ProductName: lookupString(record, paymentFieldPaths["product_name"]),
	}

	if affiliateID := lookupString(record, paymentFieldPaths["affiliate_id"]); affiliateID != "" {
		payment.AffiliateID = &affiliateID

		affiliateName := lookupString(record, paymentFieldPaths["affiliate_name"])
		payment.AffiliateName = &affiliateName
	}

	createdAt, ok := lookupTime(record, paymentFieldPaths["created_at"])
	if !ok {
		// Registros nunca somem só por falta de data; o padrão é "agora",
		// ainda que o filtro de intervalo possa excluí-los em seguida
		createdAt = n.now()
	}
	payment.CreatedAt = createdAt

	return payment, nil
}

// NormalizeMembership converte um registro bruto de associação
func (n *Normalizer) NormalizeMembership(record domain.RawRecord) (*domain.NormalizedMembership, error) {
	if record == nil {
		return nil, ErrMalformedRecord
	}

	actorID := lookupString(record, membershipFieldPaths["actor_id"])
	if actorID == "" {
		return nil, ErrNoActorIdentity
	}

	membership := &domain.NormalizedMembership{
		ID:            lookupString(record, membershipFieldPaths["id"]),
		ActorID:       actorID,
		ActorName:     lookupString(record, membershipFieldPaths["actor_name"]),
		ProductID:     lookupString(record, membershipFieldPaths["product_id"]),
		ProductName:   lookupString(record, membershipFieldPaths["product_name"]),
		Status:        normalizeStatus(lookupString(record, membershipFieldPaths["status"])),
		ActivityCount: lookupInt(record, membershipFieldPaths["activity_count"]),
	}

	lastActivity, ok := lookupTime(record, membershipFieldPaths["last_activity_at"])
	if !ok {
		lastActivity = n.now()
	}
	membership.LastActivityAt = lastActivity

	return membership, nil
}

// normalizeStatus reduz o status bruto ao enum canônico active|other
func normalizeStatus(raw string) domain.MembershipStatus {
	if strings.EqualFold(strings.TrimSpace(raw), "active") {
		return domain.MembershipStatusActive
	}
	return domain.MembershipStatusOther
}

// lookupAmount resolve um valor monetário pelos caminhos candidatos.
// Valores ausentes, não numéricos ou negativos degradam para zero; o
// registro nunca é rejeitado por causa do valor.
func lookupAmount(record domain.RawRecord, paths []string) decimal.Decimal {
	value, ok := lookupFirst(record, paths)
	if !ok {
		return decimal.Zero
	}

	amount, ok := toDecimal(value)
	if !ok || amount.IsNegative() {
		return decimal.Zero
	}

	return amount
}
