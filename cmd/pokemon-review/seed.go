package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deppfellow/pokemon-review/internal/database"
	"github.com/deppfellow/pokemon-review/internal/lib/utils"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/seed"
	"github.com/deppfellow/pokemon-review/internal/service"
)

var (
	seedDryRun  bool
	seedMigrate bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalogue",
	Long: `Creates the bundled demo countries, categories, owners, pokemon,
reviewers and reviews. Rows that already exist are left untouched, so the
command can be run more than once.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Print the dataset as JSON without touching the database")
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", true, "Apply pending migrations before seeding")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ds, err := seed.Default()
	if err != nil {
		return err
	}

	if seedDryRun {
		return utils.PrintJSON(cmd.OutOrStdout(), ds)
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	defer rt.loggerService.Shutdown()

	ctx := cmd.Context()
	log := &rt.log

	if seedMigrate {
		if err := database.Migrate(ctx, log, rt.cfg); err != nil {
			return err
		}
	}

	db, err := database.New(rt.cfg, log, rt.loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repos := repository.NewRepositoriesFromPool(db.Pool)
	services := service.NewCatalogServices(log, service.StoresFrom(repos), nil)

	res, err := seed.NewSeeder(services, log).Apply(ctx, ds)
	if err != nil {
		return err
	}

	return utils.PrintJSON(cmd.OutOrStdout(), res)
}
