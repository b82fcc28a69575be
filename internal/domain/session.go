package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados decodificados do token de sessão emitido pela
// plataforma quando o dashboard é carregado dentro do iframe
type Claims struct {
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// Session é a identidade resolvida usada para escopar as consultas.
// CompanyID é obrigatório: sessões sem empresa não executam o pipeline.
type Session struct {
	ActorID   string `json:"actor_id"`
	ActorName string `json:"actor_name"`
	CompanyID string `json:"company_id"`
}
