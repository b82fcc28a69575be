package domain

import "time"

// Company é uma instalação registrada do dashboard.
// ExternalID é o identificador da empresa na plataforma Vendora.
type Company struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	Timezone   string    `json:"timezone"`
	CreatedAt  time.Time `json:"created_at"`
}
