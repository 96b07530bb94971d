package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/report"
	reportrunner "tableflip.dev/daybook/pkg/runner/report"
)

func addReport(topLevel *cobra.Command, e *env) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize scores and completion over recent days",
		Long: `Report lists every recorded day in the window with its score and checklist
progress, then the average score and completion rates. Days never recorded
are skipped.

Examples:
  daybook report
  daybook report --last 10d
  daybook report --last 2w --on 2024-3-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			days, _, err := report.ParseWindow(last)
			if err != nil {
				return output.HandleError(err)
			}
			date, err := on.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			end, err := day.ParseKey(date)
			if err != nil {
				return output.HandleError(err)
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			r := reportrunner.Report{
				Journal: j,
				End:     end,
				Days:    days,
				Output:  output,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&last, "last", report.DefaultWindow, "window to include, for example 3d, 1w or 2w3d")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

