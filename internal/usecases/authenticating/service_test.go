package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-leaderboard-api/internal/config"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func newTestAuthenticator() Authenticator {
	cfg := &config.Config{}
	cfg.Auth.Secret = testSecret
	return NewService(cfg)
}

func signToken(t *testing.T, claims *domain.Claims, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestService_ValidateToken(t *testing.T) {
	t.Run("Token válido resolve as claims", func(t *testing.T) {
		service := newTestAuthenticator()

		tokenString := signToken(t, &domain.Claims{
			ActorID:   "u_1",
			ActorName: "alice",
			CompanyID: "biz_1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)

		claims, err := service.ValidateToken(tokenString)

		require.NoError(t, err)
		assert.Equal(t, "u_1", claims.ActorID)
		assert.Equal(t, "biz_1", claims.CompanyID)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		service := newTestAuthenticator()

		tokenString := signToken(t, &domain.Claims{ActorID: "u_1"}, "outro-segredo")

		claims, err := service.ValidateToken(tokenString)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token expirado é rejeitado", func(t *testing.T) {
		service := newTestAuthenticator()

		tokenString := signToken(t, &domain.Claims{
			ActorID: "u_1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, testSecret)

		claims, err := service.ValidateToken(tokenString)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Lixo no lugar do token é rejeitado", func(t *testing.T) {
		service := newTestAuthenticator()

		claims, err := service.ValidateToken("não é um jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestService_SessionFromClaims(t *testing.T) {
	service := newTestAuthenticator()

	t.Run("Claims completas resolvem a sessão", func(t *testing.T) {
		session, err := service.SessionFromClaims(&domain.Claims{
			ActorID:   "u_1",
			ActorName: "alice",
			CompanyID: "biz_1",
		})

		require.NoError(t, err)
		assert.Equal(t, "u_1", session.ActorID)
		assert.Equal(t, "biz_1", session.CompanyID)
	})

	t.Run("Sem company_id é condição terminal", func(t *testing.T) {
		session, err := service.SessionFromClaims(&domain.Claims{
			ActorID: "u_1",
		})

		assert.ErrorIs(t, err, ErrNoCompany)
		assert.True(t, IsSessionError(err))
		assert.Nil(t, session)
	})

	t.Run("Sem actor_id é condição terminal", func(t *testing.T) {
		session, err := service.SessionFromClaims(&domain.Claims{
			CompanyID: "biz_1",
		})

		assert.ErrorIs(t, err, ErrNoActorIdentity)
		assert.True(t, IsSessionError(err))
		assert.Nil(t, session)
	})

	t.Run("Claims ausentes são sessão inválida", func(t *testing.T) {
		session, err := service.SessionFromClaims(nil)

		assert.ErrorIs(t, err, ErrInvalidSession)
		assert.Nil(t, session)
	})
}
