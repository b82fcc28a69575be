package domain

import "time"

// Draw é o registro de auditoria de um sorteio de vencedor
type Draw struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	WinnerActorID string    `json:"winner_actor_id"`
	WinnerName    string    `json:"winner_name"`
	PoolSize      int       `json:"pool_size"`
	Range         Range     `json:"range"`
	CreatedAt     time.Time `json:"created_at"`
}

type DrawResponse struct {
	Draw   Draw             `json:"draw"`
	Winner LeaderboardEntry `json:"winner"`
}
