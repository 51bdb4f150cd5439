package main

import (
	"fmt"

	"github.com/jbapex/planeje-sub002/internal/usecases/adsproxy"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Lista as ações aceitas pelo proxy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// a lista não depende de token nem de vault
		service := adsproxy.NewService(nil, nil)
		for _, action := range service.Actions() {
			fmt.Fprintln(cmd.OutOrStdout(), action)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
