package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

type duplicateFlags struct {
	key       timesheet.EntryKey
	excludeID int64
}

func newDuplicateCmd(fs afero.Fs, flags *globalFlags) *cobra.Command {
	df := &duplicateFlags{}

	cmd := &cobra.Command{
		Use:   "check-duplicate",
		Short: "Look up an existing entry for an employee, date, project and cost code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := flags.setup(cmd, fs)
			if err != nil {
				return err
			}

			var excludeID *int64
			if cmd.Flags().Changed("exclude-id") {
				excludeID = &df.excludeID
			}

			result, err := rt.svc.CheckDuplicate(rt.requestContext(cmd.Context()), df.key, excludeID)
			if err != nil {
				return err
			}

			if err := writeDuplicateResult(cmd.OutOrStdout(), flags.output, result); err != nil {
				return err
			}
			if result.Exists {
				return fmt.Errorf("entry %d: %s: %w", result.Entry.ID, timesheet.MsgDuplicate, ErrFindings)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&df.key.EmployeeID, "employee-id", "", "Employee ID")
	cmd.Flags().StringVar(&df.key.DateWorked, "date", "", "Date worked (YYYY-MM-DD)")
	cmd.Flags().StringVar(&df.key.ProjectCode, "project-code", "", "Project code")
	cmd.Flags().StringVar(&df.key.CostCode, "cost-code", "", "Cost code")
	cmd.Flags().Int64Var(&df.excludeID, "exclude-id", 0, "Entry ID to ignore, when editing an existing entry")

	return cmd
}
