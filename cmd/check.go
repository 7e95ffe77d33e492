package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pjt727/classwatch/collection/catalog"
	"github.com/Pjt727/classwatch/collection/services/quacs"
	"github.com/Pjt727/classwatch/collection/session"
)

var checkCmd = &cobra.Command{
	Use:   "check DEPT-NNNN...",
	Short: "Reports open sections of the given courses without prompting",
	Long: `Syncs the term (defaulting the current term) and reports the open sections of
every given course. Courses that are not in the catalog are skipped with a warning`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := jobLogger("check")
		courses := make([]catalog.CourseID, 0, len(args))
		for _, arg := range args {
			id, err := catalog.ParseCourseID(arg)
			if err != nil {
				logger.Error("Course is invalid: ", err)
				return err
			}
			courses = append(courses, id)
		}

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

		synchronizer := newSynchronizer(cfg, store)
		availability, err := synchronizer.Sync(ctx, term)
		if err != nil {
			logger.Error("Could not sync term: ", err)
			return err
		}
		if availability == quacs.DataUnavailable {
			return fmt.Errorf("%w: %s", quacs.ErrTermNotFound, term)
		}
		raw, err := synchronizer.Document(ctx, term)
		if err != nil {
			logger.Error("Could not read the cached catalog: ", err)
			return err
		}
		index, err := catalog.Build(raw)
		if err != nil {
			logger.Error("Could not index the catalog: ", err)
			return err
		}

		selection := session.NewSelection()
		for _, id := range courses {
			err := index.Lookup(id)
			switch {
			case errors.Is(err, catalog.ErrUnknownDepartment), errors.Is(err, catalog.ErrUnknownCourse):
				logger.WithField("course", id.String()).Warn("Skipping course: ", err)
				continue
			case err != nil:
				return err
			}
			selection.Add(id)
		}
		logger.Info("Checking ", session.FormatCount(selection))
		return session.Report(cmd.OutOrStdout(), index, selection)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("term", "", `term to check e.i. "fall 2022" (default the current term)`)
}
