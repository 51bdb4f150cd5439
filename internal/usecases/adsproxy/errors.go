package adsproxy

import (
	"fmt"

	metadomain "github.com/jbapex/planeje-sub002/infrastructure/integrator/meta/domain"
	"github.com/jbapex/planeje-sub002/pkg/apiErrors"
)

// Response é o envelope devolvido com HTTP 200: a chave principal da ação e, se houver, error
type Response map[string]any

func errorResponse(code, message string) Response {
	return Response{
		"error": apiErrors.APIError{
			Message: message,
			Code:    code,
		},
	}
}

func missingParam(code, param string) Response {
	return errorResponse(code, fmt.Sprintf("%s is required", param))
}

func unknownAction(action string) Response {
	return Response{
		"error": apiErrors.APIError{
			Message: fmt.Sprintf("Unknown action: %s", action),
		},
	}
}

// upstreamError coloca o erro da Graph API como veio, ou REQUEST_FAILED para falhas de transporte
func upstreamError(err error) Response {
	return Response{
		"error": metadomain.InlineError(err),
	}
}

// HasError indica se o envelope carrega um erro
func (r Response) HasError() bool {
	_, ok := r["error"]
	return ok
}
