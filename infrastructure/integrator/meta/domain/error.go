package metadomain

import (
	"errors"
	"fmt"
	"strings"
)

// RequestFailedCode marca falhas que não chegaram a ter resposta da Graph API
const RequestFailedCode = "REQUEST_FAILED"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta.
// É devolvido ao chamador do proxy exatamente como veio.
type ErrorDetails struct {
	Message        string `json:"message"`
	Type           string `json:"type,omitempty"`
	Code           int    `json:"code"`
	ErrorSubcode   int    `json:"error_subcode,omitempty"`
	ErrorUserTitle string `json:"error_user_title,omitempty"`
	ErrorUserMsg   string `json:"error_user_msg,omitempty"`
	FBTraceID      string `json:"fbtrace_id,omitempty"`
}

func (e *ErrorDetails) Error() string {
	if e.ErrorSubcode != 0 {
		return fmt.Sprintf("meta api error %d (subcode %d): %s", e.Code, e.ErrorSubcode, e.Message)
	}
	return fmt.Sprintf("meta api error %d: %s", e.Code, e.Message)
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorDetails) IsTokenExpired() bool {
	// 190 = token inválido/expirado; subcódigos 460, 463 e 467 também indicam sessão encerrada
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// IsRateLimit verifica se o erro é de limite de chamadas
func (e *ErrorDetails) IsRateLimit() bool {
	switch {
	case e.Code == 4, e.Code == 17, e.Code == 32, e.Code == 613:
		return true
	case e.Code >= 80000 && e.Code <= 80014:
		return true
	}

	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "limit") || strings.Contains(msg, "rate")
}

// IsInvalidMetric indica que a Graph API rejeitou uma ou mais métricas do lote
func (e *ErrorDetails) IsInvalidMetric() bool {
	return strings.Contains(strings.ToLower(e.Message), "valid insights metric")
}

// RequestFailure é o erro embutido quando a chamada falhou antes de a Graph API responder
type RequestFailure struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// AsGraphError extrai o erro da Graph API, se houver
func AsGraphError(err error) (*ErrorDetails, bool) {
	var graphErr *ErrorDetails
	if errors.As(err, &graphErr) {
		return graphErr, true
	}
	return nil, false
}

// IsRateLimitError é o atalho de IsRateLimit para um error qualquer
func IsRateLimitError(err error) bool {
	graphErr, ok := AsGraphError(err)
	return ok && graphErr.IsRateLimit()
}

// InlineError converte err no objeto que vai no campo "error" da resposta:
// o erro da Graph API como veio, ou REQUEST_FAILED para falhas de transporte
func InlineError(err error) any {
	if err == nil {
		return nil
	}
	if graphErr, ok := AsGraphError(err); ok {
		return graphErr
	}
	return &RequestFailure{
		Message: err.Error(),
		Code:    RequestFailedCode,
	}
}
