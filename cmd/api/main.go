package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/jbapex/planeje-sub002/internal/api"
	"github.com/jbapex/planeje-sub002/internal/bootstrap"
	"github.com/jbapex/planeje-sub002/internal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	proxyService, cleanup, err := bootstrap.NewProxyService(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o serviço do proxy")
	}
	defer cleanup()

	if cfg.Supabase.JWTSecret != "" {
		logrus.Info("Validação de JWT do chamador habilitada")
	}

	server, err := api.New(cfg, proxyService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}
