package authenticating

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

// Authenticator decodifica o token de sessão que a plataforma injeta no
// iframe do dashboard. O token é a única credencial do sistema: não há
// usuários nem senhas próprios.
type Authenticator interface {
	// ValidateToken decodifica e valida o token bruto do header
	ValidateToken(tokenString string) (*domain.Claims, error)

	// SessionFromClaims resolve a identidade usada para escopar as
	// consultas. Claims sem empresa são uma condição terminal: o pipeline
	// de analytics não executa.
	SessionFromClaims(claims *domain.Claims) (*domain.Session, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, "claims inesperadas no token")
	}

	return claims, nil
}

func (s *Service) SessionFromClaims(claims *domain.Claims) (*domain.Session, error) {
	if claims == nil {
		return nil, NewAuthError(ErrInvalidSession, "claims ausentes")
	}

	if claims.ActorID == "" {
		return nil, NewAuthError(ErrNoActorIdentity, "token sem actor_id")
	}

	// A validade do actor não compensa a falta da empresa: sem company_id
	// não há como escopar as consultas
	if claims.CompanyID == "" {
		return nil, NewAuthError(ErrNoCompany, "token sem company_id")
	}

	return &domain.Session{
		ActorID:   claims.ActorID,
		ActorName: claims.ActorName,
		CompanyID: claims.CompanyID,
	}, nil
}
