package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrMissingToken = "AUTH_001" // Cabeçalho Authorization ausente
	ErrInvalidToken = "AUTH_002" // Token inválido
	ErrExpiredToken = "AUTH_003" // Token expirado

	// Recursos inexistentes
	ErrNotFound = "NOT_FOUND" // Usuário ou categoria não encontrados
	ErrNoData   = "NO_DATA"   // Usuário sem vendas para o relatório

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidParam   = "VAL_002" // Parâmetro de rota ou query inválido
	ErrInvalidFormat  = "VAL_003" // Formato de relatório inválido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrReportGeneration  = "SRV_003" // Erro ao gerar relatório
)

var httpStatusMap = map[string]int{
	ErrMissingToken:      http.StatusUnauthorized,
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrExpiredToken:      http.StatusUnauthorized,
	ErrNotFound:          http.StatusNotFound,
	ErrNoData:            http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidParam:      http.StatusBadRequest,
	ErrInvalidFormat:     http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrReportGeneration:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status devolve o status HTTP do código, 500 para códigos desconhecidos
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError envolve um erro Go em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
