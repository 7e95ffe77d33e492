package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pjt727/classwatch/collection/services/quacs"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refreshes the cached catalog of a term",
	Long: `Makes one conditional request for the term's catalog and stores it when it
changed (defaulting the current term). Exits non zero when the term has no data`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := jobLogger("sync")
		termInput, err := cmd.Flags().GetString("term")
		if err != nil {
			logger.Error("invalid term", err)
			return err
		}
		term, err := termFlag(termInput)
		if err != nil {
			logger.Error("Term is invalid: ", err)
			return err
		}
		logger = logger.WithField("term", term.Code())
		ctx := cmd.Context()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			logger.Error("Could not open the cache: ", err)
			return err
		}
		defer closeStore()

		availability, err := newSynchronizer(cfg, store).Sync(ctx, term)
		if err != nil {
			logger.Error("Could not sync term: ", err)
			return err
		}
		if availability == quacs.DataUnavailable {
			logger.Warn("Term has no published data")
			return fmt.Errorf("%w: %s", quacs.ErrTermNotFound, term)
		}
		logger.Info("Term data is available")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().String("term", "", `term to sync e.i. "fall 2022" (default the current term)`)
}
