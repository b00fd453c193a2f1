package commands

import (
	"github.com/spf13/cobra"

	"github.com/fitfusion/fitfusion/internal/config"
	"github.com/fitfusion/fitfusion/internal/db"
	"github.com/fitfusion/fitfusion/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Init(cfg.IsDevelopment(), cfg.LogFile)

		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return err
		}
		defer db.Close(database)

		return db.RunMigrations(database.DB, cfg.DBDriver)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger.Init(cfg.IsDevelopment(), cfg.LogFile)

		database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return err
		}
		defer db.Close(database)

		return db.MigrateDown(database.DB, cfg.DBDriver)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
