package apiErrors

import (
	"net/http"
)

// Códigos de erro padronizados da API de métricas
const (
	// Erros de autenticação de sessão (1000-1999)
	ErrMissingSession = "AUTH_001" // Sessão ausente
	ErrInvalidSession = "AUTH_002" // Sessão inválida ou expirada

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Parâmetros obrigatórios ausentes
	ErrInvalidProduct      = "VAL_003" // Produto desconhecido
	ErrInvalidDateRange    = "VAL_004" // Intervalo de datas inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer      = "SRV_001" // Erro interno do servidor
	ErrUpstreamUnavailable = "SRV_002" // Provedor upstream indisponível
	ErrCacheOperation      = "SRV_003" // Erro de operação de cache
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingSession:      http.StatusUnauthorized,
	ErrInvalidSession:      http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidProduct:      http.StatusBadRequest,
	ErrInvalidDateRange:    http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrUpstreamUnavailable: http.StatusBadGateway,
	ErrCacheOperation:      http.StatusInternalServerError,
}

// StatusForCode retorna o status HTTP associado ao código de erro
func StatusForCode(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
