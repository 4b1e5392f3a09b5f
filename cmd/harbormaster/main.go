package main

import (
	"os"

	"github.com/spf13/cobra"

	"harbormaster/internal/interfaces/cli/migrate"
	"harbormaster/internal/interfaces/cli/seed"
	"harbormaster/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "harbormaster",
		Short: "Harbor Master - capacity-bounded berth and hauler assignment",
		Long:  `Harbor Master tracks docks, haulers, and ships, enforcing capacity limits on every assignment.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
