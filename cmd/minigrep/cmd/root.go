// Package cmd provides the minigrep command line.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minigrep/internal/config"
	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/runner"
	"github.com/Aman-CERP/minigrep/internal/ui"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

// NewRootCmd creates the root command for the minigrep CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.LookupEnv)
}

// newRootCmd builds the root command reading the environment through
// lookupEnv. The environment is read once per execution.
func newRootCmd(lookupEnv config.LookupEnvFunc) *cobra.Command {
	var debugMode bool

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line that contains the query.

Set IGNORE_CASE (to any value) for case-insensitive matching.
A query that starts with '-' must follow '--':

  minigrep -- -x notes.txt`,
		Version:       version.Short(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// config.Build expects the invocation name in args[0].
			cfg, err := config.Build(append([]string{cmd.Name()}, args...), lookupEnv)
			if err != nil {
				return err
			}

			logger, cleanup, err := setupLogging(debugMode, lookupEnv)
			if err != nil {
				return err
			}
			defer cleanup()

			return runner.New(cmd.OutOrStdout(), runner.WithLogger(logger)).Run(cmd.Context(), cfg)
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return mgerrors.New(mgerrors.ErrCodeInvalidFlag, err.Error(), err).
			WithSuggestion(config.Usage)
	})

	// Everything from the query on is positional.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.minigrep/logs/")

	return cmd
}

// setupLogging loads user settings and returns the run logger. Without
// --debug or a configured log file every record is discarded, leaving stdout
// for matches and stderr for the error description.
//
// Settings only affect logging, so a broken settings file or log path fails
// the run only when logging was asked for with --debug or a MINIGREP_LOG_*
// variable. Otherwise the search runs with logging off.
func setupLogging(debug bool, lookupEnv config.LookupEnvFunc) (*slog.Logger, func(), error) {
	logger, cleanup, err := newLogger(debug, lookupEnv)
	if err != nil {
		if debug || config.LogEnvSet(lookupEnv) {
			return nil, nil, err
		}
		return logging.Discard(), func() {}, nil
	}
	return logger, cleanup, nil
}

func newLogger(debug bool, lookupEnv config.LookupEnvFunc) (*slog.Logger, func(), error) {
	settings, err := config.LoadSettings(lookupEnv)
	if err != nil {
		return nil, nil, err
	}

	if !debug && settings.Logging.File == "" {
		return logging.Discard(), func() {}, nil
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = settings.Logging.Level
	if debug {
		logCfg = logging.DebugConfig()
	}
	if settings.Logging.File != "" {
		logCfg.FilePath = settings.Logging.File
	}
	logCfg.MaxSizeMB = settings.Logging.MaxSizeMB
	logCfg.MaxFiles = settings.Logging.MaxFiles

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, nil, mgerrors.ConfigError("failed to open log file", err).
			WithDetail("path", logCfg.FilePath)
	}
	// Processes may share one log file; run_id groups the records of a run.
	logger = logger.With(slog.String("run_id", uuid.NewString()))
	logger.Debug("logging_enabled",
		slog.String("log_file", logCfg.FilePath),
		slog.String("version", version.Short()))
	return logger, cleanup, nil
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCmd()
	cmd.SetContext(ctx)
	return execute(cmd, os.LookupEnv)
}

// execute runs cmd, reports any failure on its stderr and maps it to an exit
// status.
func execute(cmd *cobra.Command, lookupEnv config.LookupEnvFunc) int {
	err := cmd.Execute()
	if err != nil {
		report(cmd.ErrOrStderr(), err, lookupEnv)
	}
	return mgerrors.ExitCode(err)
}

func report(w io.Writer, err error, lookupEnv config.LookupEnvFunc) {
	ui.NewErrorReporter(w, ui.ColorEnabled(w, lookupEnv)).Report(err)
}
