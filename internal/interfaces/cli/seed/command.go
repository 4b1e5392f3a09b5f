// Package seed implements the fixture loading command.
package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"harbormaster/internal/infrastructure/config"
	"harbormaster/internal/infrastructure/database"
	"harbormaster/internal/infrastructure/persistence/seeds"
	"harbormaster/internal/infrastructure/repository"
	"harbormaster/internal/shared/logger"
)

var (
	env         string
	fixturePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load harbor fixtures",
		Long:  `Load docks, haulers, and ships from a YAML fixture file into the database.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "Path to fixture file (default: from config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	path := fixturePath
	if path == "" {
		path = cfg.Seed.FixturePath
	}

	log := logger.NewLogger()
	seeder := seeds.NewHarborSeeder(
		repository.NewDockRepository(database.Get(), log),
		repository.NewHaulerRepository(database.Get(), log),
		repository.NewShipRepository(database.Get(), log),
	)

	return seeder.Seed(context.Background(), path)
}
