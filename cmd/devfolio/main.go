package main

import (
	"os"

	"github.com/spf13/cobra"

	"devfolio/internal/interfaces/cli/migrate"
	"devfolio/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "devfolio",
		Short: "Devfolio - portfolio site backend",
		Long:  `Devfolio serves portfolio content and the guest access approval workflow behind it.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
