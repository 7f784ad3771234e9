package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/timesheet-service/internal/adapters/importer"
	"github.com/jsamuelsen11/timesheet-service/internal/platform/logging"
)

func newValidateCmd(fs afero.Fs, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate every entry in a file",
		Long: `Validate every entry in a timesheet file against the field and hour
rules and the configured entry store.

Accepted formats: .xlsx, .xlsm, .xls, .csv, .json, .yaml

Examples:
  # Validate a crew's week against the local seed store
  tsvalidate validate week-02.xlsx

  # Machine-readable result against the dev entry service
  tsvalidate validate --profile dev -o json week-02.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := flags.setup(cmd, fs)
			if err != nil {
				return err
			}

			file, err := readFile(fs, args[0])
			if err != nil {
				return err
			}
			entries := file.Entries

			ctx := rt.requestContext(cmd.Context())
			result, err := rt.svc.ValidateBatch(ctx, entries)
			if err != nil {
				logging.FromContext(ctx).ErrorContext(ctx, "batch validation failed",
					slog.String("operation", "cli.validate"),
					slog.String("file", args[0]),
					slog.Any("error", err),
				)
				return err
			}

			if err := writeBatchResult(cmd.OutOrStdout(), flags.output, file, result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("%d of %d entries invalid: %w", len(result.EntryErrors), len(entries), ErrFindings)
			}
			return nil
		},
	}
}

// readFile opens path on fs and parses it by extension.
func readFile(fs afero.Fs, path string) (importer.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return importer.File{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	file, err := importer.Read(f, filepath.Base(path))
	if err != nil {
		return importer.File{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return file, nil
}
