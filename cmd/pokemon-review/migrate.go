package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/pokemon-review/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.loggerService.Shutdown()

		return database.Migrate(cmd.Context(), &rt.log, rt.cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
