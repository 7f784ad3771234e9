// Package cli implements the tsvalidate operator command line. It reads
// timesheet entries from files, validates them against the configured entry
// store and prints the outcome as JSON or as a table.
//
// Exit codes: 0 when everything is valid, 1 when entries are invalid or a
// duplicate exists, 2 when validity could not be determined.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/store"
	"github.com/jsamuelsen11/timesheet-service/internal/app"
	appctx "github.com/jsamuelsen11/timesheet-service/internal/app/context"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/config"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
	"github.com/jsamuelsen11/timesheet-service/internal/ports"
)

// Output formats.
const (
	OutputJSON  = "json"
	OutputTable = "table"
)

const defaultProfile = "local"

// ErrFindings is returned by a command whose input was checked successfully
// but found invalid.
var ErrFindings = errors.New("validation findings")

// ExitCode maps the error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrFindings):
		return 1
	default:
		return 2
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
	output    string
}

// runtime is what a subcommand needs once config has been loaded.
type runtime struct {
	logger *slog.Logger
	svc    ports.TimesheetService
}

// NewRoot builds the tsvalidate command tree. Input files and the memory
// store seed are read from fs.
func NewRoot(fs afero.Fs) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "tsvalidate",
		Short:         "Validate timesheet entries before submission",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch flags.output {
			case OutputJSON, OutputTable:
				return nil
			default:
				return fmt.Errorf("--output must be one of: %s, %s; got %q", OutputJSON, OutputTable, flags.output)
			}
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cmd.PersistentFlags().StringVar(&flags.profile, "profile", profile, "Config profile (defaults to $APP_PROFILE or local)")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", OutputTable, "Output format: json or table")

	cmd.AddCommand(newValidateCmd(fs, flags))
	cmd.AddCommand(newSummaryCmd(fs, flags))
	cmd.AddCommand(newDuplicateCmd(fs, flags))
	return cmd
}

// setup loads configuration from fs and wires the validation service. Logs
// go to the command's error stream so that stdout carries only the result.
func (f *globalFlags) setup(cmd *cobra.Command, fs afero.Fs) (*runtime, error) {
	cfg, err := config.Load(f.profile, config.WithConfigDir(f.configDir), config.WithFS(fs))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	backend, err := store.Open(fs, cfg, nil, logger)
	if err != nil {
		return nil, err
	}

	svc := app.NewTimesheetService(backend, app.Options{
		DuplicateCheckTimeout: cfg.Validation.DuplicateCheckTimeout,
		BatchConcurrency:      cfg.Validation.BatchConcurrency,
		MaxBatchSize:          cfg.Validation.MaxBatchSize,
	}, nil, logger)

	return &runtime{logger: logger, svc: svc}, nil
}

// requestContext gives one invocation what the HTTP middleware gives a
// request: an ID sent to the entry service, a logger tagged with it and a
// fresh lookup memo.
func (rt *runtime) requestContext(ctx context.Context) context.Context {
	id := uuid.NewString()
	ctx = httpclient.WithRequestID(ctx, id)
	ctx = logging.WithLogger(ctx, rt.logger.With(slog.String("request_id", id)))
	return appctx.WithRequestContext(ctx, appctx.New(ctx))
}
