package cmd

import (
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "menu",
	Short: "MENU band site utility CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("MENU", "", true).Print()
	},
}

// Execute runs the CLI. Called from the cli entrypoint after env loading.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
