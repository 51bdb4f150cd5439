// Package bootstrap monta o serviço do proxy a partir da configuração,
// compartilhado entre a API HTTP e a CLI.
package bootstrap

import (
	"context"
	"time"

	"github.com/jbapex/planeje-sub002/infrastructure/database/postgres"
	"github.com/jbapex/planeje-sub002/infrastructure/integrator/meta"
	"github.com/jbapex/planeje-sub002/infrastructure/repository"
	"github.com/jbapex/planeje-sub002/internal/config"
	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy"
	"github.com/jbapex/planeje-sub002/internal/usecases/credential"
	"github.com/sirupsen/logrus"
)

// ConfigureLogger aplica formato e nível de log
func ConfigureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

// SecretStore escolhe o vault: SQL quando DATABASE_URL existe, senão o RPC do Supabase.
// Sem nenhum dos dois devolve nil e o token precisa estar no ambiente.
func SecretStore(ctx context.Context, cfg *config.Config) (config.SecretStore, func(), error) {
	switch {
	case cfg.Database.Enabled():
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, func() {}, err
		}
		logrus.Info("Vault via PostgreSQL habilitado")
		return repository.NewSecretRepository(conn), func() { _ = conn.Close() }, nil

	case cfg.Supabase.VaultEnabled():
		logrus.Info("Vault via RPC do Supabase habilitado")
		return config.NewSupabaseVault(cfg), func() {}, nil
	}

	logrus.Info("Nenhum vault configurado, usando só META_SYSTEM_USER_ACCESS_TOKEN")
	return nil, func() {}, nil
}

// NewProxyService monta o despachante de ações com o vault escolhido
func NewProxyService(ctx context.Context, cfg *config.Config) (adsproxy.Service, func(), error) {
	store, cleanup, err := SecretStore(ctx, cfg)
	if err != nil {
		return nil, cleanup, err
	}

	resolver := credential.NewService(cfg, store)

	service := adsproxy.NewService(resolver, func(token string) meta.Integrator {
		return meta.NewForToken(cfg, token)
	})

	return service, cleanup, nil
}
