package credential

import (
	"context"
	"errors"
	"strings"

	"github.com/jbapex/planeje-sub002/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrTokenNotFound = errors.New("meta access token not found")

// Source indica de onde o token veio
type Source string

const (
	SourceEnv   Source = "env"
	SourceVault Source = "vault"
)

type Resolver interface {
	Resolve(ctx context.Context) (string, Source, error)
}

// Service resolve o token da Graph API a cada requisição, sem cache:
// primeiro a variável de ambiente, depois o vault
type Service struct {
	cfg   *config.Config
	store config.SecretStore
}

// NewService aceita store nil quando nenhum vault está configurado
func NewService(cfg *config.Config, store config.SecretStore) Resolver {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

func (s *Service) Resolve(ctx context.Context) (string, Source, error) {
	if token := strings.TrimSpace(s.cfg.Meta.AccessToken); token != "" {
		return token, SourceEnv, nil
	}

	if s.store == nil {
		logrus.Debug("credential: no vault configured")
		return "", "", ErrTokenNotFound
	}

	token, err := s.store.GetSecret(ctx, s.cfg.Meta.TokenSecretName)
	if err != nil {
		if !errors.Is(err, config.ErrSecretNotFound) {
			logrus.WithFields(logrus.Fields{
				"secret_name": s.cfg.Meta.TokenSecretName,
				"error":       err.Error(),
			}).Warn("credential: vault lookup failed")
		}
		return "", "", ErrTokenNotFound
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", "", ErrTokenNotFound
	}

	return token, SourceVault, nil
}
