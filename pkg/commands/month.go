package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command, e *env) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month of days colored by score.",
		Example: `
daybook month
daybook month 2024-02 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			m := calendar.MonthOf(now)
			if len(args) == 1 {
				var err error
				if m, err = calendar.ParseMonth(args[0]); err != nil {
					return output.HandleError(err)
				}
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			r := month.Month{
				Journal: j,
				Month:   m,
				Today:   now,
				Output:  output,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
