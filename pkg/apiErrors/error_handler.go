package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_001" // Token de sessão inválido
	ErrExpiredToken = "AUTH_002" // Token de sessão expirado
	ErrNoCompany    = "AUTH_003" // Sessão sem empresa resolvível
	ErrNoActor      = "AUTH_004" // Sessão sem identidade de ator

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidTab     = "VAL_002" // Aba de leaderboard inválida
	ErrInvalidRange   = "VAL_003" // Intervalo de datas inválido
	ErrEmptyPool      = "VAL_004" // Pool de sorteio vazio

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrExpiredToken:      http.StatusUnauthorized,
	ErrNoCompany:         http.StatusUnauthorized,
	ErrNoActor:           http.StatusUnauthorized,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidTab:        http.StatusBadRequest,
	ErrInvalidRange:      http.StatusBadRequest,
	ErrEmptyPool:         http.StatusUnprocessableEntity,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
