package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/pokemon-review/internal/config"
	"github.com/deppfellow/pokemon-review/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pokemon-review [command]",
	Short: "Pokemon review catalogue API",
	Long: `Serves the Pokemon review REST API backed by PostgreSQL.

Configuration is read from POKEMON_* environment variables and an optional
.env file in the working directory.`,
	SilenceUsage: true,
}

// bootstrap is what every subcommand needs before it does any work.
type bootstrap struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger
}

func loadRuntime() (*bootstrap, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	return &bootstrap{
		cfg:           cfg,
		loggerService: loggerService,
		log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
	}, nil
}
