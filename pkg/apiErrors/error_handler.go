package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos no campo error.code
const (
	// Erros de requisição
	ErrInvalidRequest = "INVALID_REQUEST" // Corpo não é JSON válido
	ErrMissingAction  = "MISSING_ACTION"  // Campo action ausente

	// Parâmetros obrigatórios ausentes
	ErrMissingAdID             = "MISSING_AD_ID"
	ErrMissingFormID           = "MISSING_FORM_ID"
	ErrMissingLeadID           = "MISSING_LEAD_ID"
	ErrMissingAdAccountID      = "MISSING_AD_ACCOUNT_ID"
	ErrMissingCampaignID       = "MISSING_CAMPAIGN_ID"
	ErrMissingParentID         = "MISSING_PARENT_ID"
	ErrMissingPageID           = "MISSING_PAGE_ID"
	ErrMissingInstagramAccount = "MISSING_INSTAGRAM_ACCOUNT_ID"
	ErrMissingContent          = "MISSING_CONTENT"
	ErrMissingMediaURL         = "MISSING_MEDIA_URL"

	// Credencial e serviços externos
	ErrTokenNotFound = "TOKEN_NOT_FOUND" // Token nem no ambiente nem no vault
	ErrRequestFailed = "REQUEST_FAILED"  // Falha de transporte na Graph API

	// Erros do servidor
	ErrUnauthorized   = "UNAUTHORIZED"   // JWT do chamador ausente ou inválido
	ErrInternalServer = "INTERNAL_ERROR" // Erro inesperado
)

// Mapeamento de códigos de erro para status HTTP.
// Erros de negócio vão sempre com 200; o chamador lê o campo error.
var httpStatusMap = map[string]int{
	ErrUnauthorized:   http.StatusUnauthorized,
	ErrInternalServer: http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorResponse é o envelope {"error": {...}}
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// StatusFor devolve o status HTTP de um código; códigos de negócio são 200
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusOK
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: message,
		},
	})
}

// WriteInternalError escreve 500 {"error": {"message"}}, sem código
func WriteInternalError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: APIError{Message: message},
	})
}
