package handler

import (
	"io"
	"net/http"

	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy"
	"github.com/jbapex/planeje-sub002/pkg/apiErrors"
	"github.com/jbapex/planeje-sub002/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// MetaAdsProxy recebe {action, ...params} e responde sempre 200 com o envelope da ação
func MetaAdsProxy(service adsproxy.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("Erro ao ler o corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		resp := service.Dispatch(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

// ActionList expõe as ações conhecidas, útil para o front conferir o contrato
func ActionList(service adsproxy.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(map[string][]string{"actions": service.Actions()}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
