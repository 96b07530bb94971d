package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/show"
)

func addShow(topLevel *cobra.Command, e *env) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day: score, quote, checklists and notes.",
		Example: `
daybook show
daybook show --on yesterday
daybook show --on 2024-3-7 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Journal: j,
				Date:    date,
				Output:  output,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
