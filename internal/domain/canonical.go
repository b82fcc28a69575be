package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipStatus é o status canônico de uma associação
type MembershipStatus string

const (
	MembershipStatusActive MembershipStatus = "active"
	MembershipStatusOther  MembershipStatus = "other"
)

// NormalizedPayment é a forma canônica de um pagamento após a normalização.
// Amount nunca é negativo: valores ausentes ou não numéricos viram zero.
type NormalizedPayment struct {
	ID            string          `json:"id"`
	ActorID       string          `json:"actor_id"`
	ActorName     string          `json:"actor_name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	AffiliateID   *string         `json:"affiliate_id,omitempty"`
	AffiliateName *string         `json:"affiliate_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NormalizedMembership é a forma canônica de uma associação após a normalização
type NormalizedMembership struct {
	ID             string           `json:"id"`
	ActorID        string           `json:"actor_id"`
	ActorName      string           `json:"actor_name"`
	ProductID      string           `json:"product_id"`
	ProductName    string           `json:"product_name"`
	Status         MembershipStatus `json:"status"`
	LastActivityAt time.Time        `json:"last_activity_at"`
	ActivityCount  int              `json:"activity_count"`
}
