package adsproxy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbapex/planeje-sub002/infrastructure/integrator/meta"
	"github.com/jbapex/planeje-sub002/internal/usecases/credential"
	"github.com/jbapex/planeje-sub002/pkg/apiErrors"
	"github.com/jbapex/planeje-sub002/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Service despacha o corpo {action, ...params} para a ação correspondente.
// Dispatch nunca devolve erro: falhas vão no envelope, dentro de "error".
type Service interface {
	Dispatch(ctx context.Context, body []byte) Response
	Actions() []string
}

// IntegratorFactory monta um integrador para o token resolvido na requisição
type IntegratorFactory func(token string) meta.Integrator

type actionHandler func(ctx context.Context, call *call) Response

// call carrega o que um handler precisa durante uma única requisição
type call struct {
	integrator  meta.Integrator
	req         Request
	tokenSource credential.Source
}

type service struct {
	resolver credential.Resolver
	factory  IntegratorFactory
	actions  map[string]actionEntry
}

func NewService(resolver credential.Resolver, factory IntegratorFactory) Service {
	s := &service{
		resolver: resolver,
		factory:  factory,
	}
	s.actions = s.actionTable()
	return s
}

func (s *service) Dispatch(ctx context.Context, body []byte) Response {
	logger := log.ForContext(ctx)

	req, err := ParseRequest(body)
	if err != nil {
		logger.WithError(err).Warn("adsproxy: invalid request body")
		return errorResponse(apiErrors.ErrInvalidRequest, "Invalid JSON body")
	}

	action, ok := req.Action()
	if !ok {
		return errorResponse(apiErrors.ErrMissingAction, "action is required")
	}

	entry, ok := s.actions[action]
	if !ok {
		logger.WithField("action", action).Warn("adsproxy: unknown action")
		return unknownAction(action)
	}

	if key, bad := req.invalidID(); bad {
		logger.WithField("param", key).Warn("adsproxy: invalid id")
		return entry.fillDefaults(errorResponse(apiErrors.ErrInvalidRequest, fmt.Sprintf("invalid %s", key)))
	}

	token, source, err := s.resolver.Resolve(ctx)
	if err != nil {
		if !errors.Is(err, credential.ErrTokenNotFound) {
			logger.WithError(err).Error("adsproxy: credential resolution failed")
		}
		resp := errorResponse(apiErrors.ErrTokenNotFound, "Meta access token not configured")
		resp["connected"] = false
		return entry.fillDefaults(resp)
	}

	logger.WithFields(log.Fields{
		"action":       action,
		"token_source": string(source),
	}).Debug("adsproxy: dispatching action")

	resp := entry.handler(ctx, &call{
		integrator:  s.factory(token),
		req:         req,
		tokenSource: source,
	})
	if resp == nil {
		resp = Response{}
	}

	return entry.fillDefaults(resp)
}
