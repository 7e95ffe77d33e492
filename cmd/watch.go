package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pjt727/classwatch/collection/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactively pick a term and courses and see their open sections",
	Long: `Prompts for a term, refreshes its catalog when it was republished, then
prompts for courses (DEPT-NNNN) until -1 and reports the sections with open seats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := jobLogger("watch")
		ctx := cmd.Context()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			logger.Error("Could not open the cache: ", err)
			return err
		}
		defer closeStore()

		s := session.New(appLog, newSynchronizer(cfg, store), cmd.InOrStdin(), cmd.OutOrStdout())
		if err := s.Run(ctx); err != nil {
			logger.Error("Session ended early: ", err)
			return err
		}
		logger.Info("Session finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
