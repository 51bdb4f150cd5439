package main

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	paramFlags []string
	bodyFlag   string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <action>",
	Short: "Executa uma ação e imprime o envelope de resposta",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := buildBody(args[0], bodyFlag, paramFlags)
		if err != nil {
			return err
		}

		service, cleanup, err := newService(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		resp := service.Dispatch(cmd.Context(), body)

		if err := printJSON(cmd, resp); err != nil {
			return err
		}
		if resp.HasError() {
			return fmt.Errorf("a ação %s respondeu com erro", args[0])
		}
		return nil
	},
}

func init() {
	invokeCmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil, "Parâmetro key=value (repetível)")
	invokeCmd.Flags().StringVar(&bodyFlag, "body", "", "Objeto JSON com os parâmetros; --param sobrescreve as chaves")
	rootCmd.AddCommand(invokeCmd)
}

// buildBody junta --body, --param e o action no corpo que o endpoint receberia
func buildBody(action, rawBody string, params []string) ([]byte, error) {
	body := map[string]any{}

	if strings.TrimSpace(rawBody) != "" {
		if err := json.Unmarshal([]byte(rawBody), &body); err != nil {
			return nil, fmt.Errorf("--body não é um objeto JSON válido: %w", err)
		}
		if body == nil {
			return nil, fmt.Errorf("--body não é um objeto JSON válido")
		}
	}

	for _, param := range params {
		key, value, ok := strings.Cut(param, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("parâmetro inválido %q, use key=value", param)
		}
		body[key] = value
	}

	body["action"] = action

	return json.Marshal(body)
}
