package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jbapex/planeje-sub002/internal/bootstrap"
	"github.com/jbapex/planeje-sub002/internal/config"
	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy"
	"github.com/jbapex/planeje-sub002/pkg/utils"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	prettyFlag  bool
	compactFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "adsproxy",
	Short: "Executa ações do proxy da Meta Graph API sem subir o servidor",
	Long: `adsproxy roda as mesmas ações do endpoint POST do proxy, no próprio processo.

A configuração e a resolução do token são as da API: META_SYSTEM_USER_ACCESS_TOKEN
primeiro, depois o vault (DATABASE_URL ou SUPABASE_URL + SUPABASE_SERVICE_ROLE_KEY).

Exemplos:
  adsproxy actions
  adsproxy invoke check-connection
  adsproxy invoke get-campaigns --param adAccountId=act_123 --param datePreset=last_7d
  adsproxy invoke get-instagram-insights --body '{"instagramAccountId":"178","metrics":["reach"]}'`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&prettyFlag, "pretty", false, "Força JSON indentado")
	rootCmd.PersistentFlags().BoolVar(&compactFlag, "compact", false, "Força JSON em uma linha")
}

// newService lê a configuração e monta o mesmo serviço usado pela API
func newService(ctx context.Context) (adsproxy.Service, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, func() {}, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)
	// logs vão para stderr para não misturar com o JSON
	return bootstrap.NewProxyService(ctx, cfg)
}

// isPretty indenta no terminal e compacta quando a saída é redirecionada
func isPretty() bool {
	switch {
	case compactFlag:
		return false
	case prettyFlag:
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := utils.PrettyJson(v, isPretty())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
