package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Pjt727/classwatch/collection/services"
	"github.com/Pjt727/classwatch/config"
	logginghelpers "github.com/Pjt727/classwatch/data/logging-helpers"
)

var (
	configFile string
	v          = viper.New()

	// set up by the root command before any subcommand runs
	cfg     *config.Config
	appLog  *slog.Logger
	runID   string
	logFile *os.File
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classwatch",
	Short: "classwatch checks a QuACS course catalog for sections with open seats",
	Long: `classwatch keeps a local copy of a term's QuACS course catalog, only downloading
it again when it was republished, and reports which sections of the courses you
care about still have seats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level, err := logginghelpers.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		log.SetLevel(logrusLevel(level))
		runID = uuid.NewString()

		var file io.Writer
		if cfg.Log.File != "" {
			logFile, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("could not open log file %s: %w", cfg.Log.File, err)
			}
			file = logFile
		}
		appLog = logginghelpers.NewLogger(cmd.ErrOrStderr(), file, level).With("run", runID)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return finish()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.WithField("run", runID).Error(err)
		_ = finish()
		os.Exit(1)
	}
}

// finish flushes the metrics textfile and closes the log file, once
func finish() error {
	var err error
	if cfg != nil && cfg.MetricsFile != "" {
		if err = services.WriteMetrics(cfg.MetricsFile); err != nil {
			err = fmt.Errorf("could not write metrics: %w", err)
		}
		cfg.MetricsFile = ""
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	return err
}

// jobLogger is the logrus entry every command reports its progress on
func jobLogger(job string) *log.Entry {
	return log.WithFields(log.Fields{
		"job": job,
		"run": runID,
	})
}

func logrusLevel(level slog.Level) log.Level {
	switch {
	case level < logginghelpers.LevelReportIO:
		return log.TraceLevel
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "", "one of trace, debug, io, info, warn, error (default info)")
	flags.String("log-file", "", "append json logs to this file")
	flags.String("cache-backend", "", "where term catalogs are cached: file, postgres or redis (default file)")
	flags.String("cache-dir", "", "directory of the file cache (default the user cache directory)")
	flags.String("source-url", "", "base url of the QuACS semester data")
	flags.String("metrics-file", "", "write prometheus metrics to this textfile when done")

	bindFlags(flags, map[string]string{
		"log.level":     "log-level",
		"log.file":      "log-file",
		"cache.backend": "cache-backend",
		"cache.dir":     "cache-dir",
		"source_url":    "source-url",
		"metrics_file":  "metrics-file",
	})
}

// bindFlags maps config keys to the flags that override them
func bindFlags(flags *pflag.FlagSet, bindings map[string]string) {
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
