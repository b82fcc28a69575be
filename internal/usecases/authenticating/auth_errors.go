package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	ErrInvalidToken    = errors.New("token de sessão inválido")
	ErrExpiredToken    = errors.New("token de sessão expirado")
	ErrInvalidSession  = errors.New("sessão inválida")
	ErrNoActorIdentity = errors.New("sessão sem identidade de ator")
	ErrNoCompany       = errors.New("sessão sem empresa resolvível")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsSessionError verifica se o erro é uma condição terminal de sessão,
// que impede a execução do pipeline
func IsSessionError(err error) bool {
	return errors.Is(err, ErrInvalidSession) ||
		errors.Is(err, ErrNoActorIdentity) ||
		errors.Is(err, ErrNoCompany)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Details: details,
	}
}
