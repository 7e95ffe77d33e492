package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Pjt727/classwatch/config"
	"github.com/Pjt727/classwatch/data"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Runs the up migrations",
	Long:  `Creates the term cache table used by the postgres cache backend and errors if the up migrations cannot work`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := jobLogger("up")
		if cfg.Cache.DatabaseURL == "" {
			logger.Error("No database configured, set DB_CONN or cache.database_url")
			return errors.New("no database configured")
		}
		if cfg.Cache.Backend != config.BackendPostgres {
			logger.Warn("Migrating although the cache backend is ", cfg.Cache.Backend)
		}
		if err := data.MigrateUp(cfg.Cache.DatabaseURL); err != nil {
			logger.Error("Could not run up migrations: ", err)
			return err
		}
		logger.Info("Database has been synced with any up migrations")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
}
