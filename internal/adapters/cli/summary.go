package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newSummaryCmd(fs afero.Fs, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>",
		Short: "Total the hours in a file per ISO week and day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := flags.setup(cmd, fs)
			if err != nil {
				return err
			}

			file, err := readFile(fs, args[0])
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), flags.output, rt.svc.Summarize(cmd.Context(), file.Entries))
		},
	}
}
