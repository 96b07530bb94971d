package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daybook completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daybook completion)
`,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(os.Stdout, true)
		},
	}

	topLevel.AddCommand(cmd)
}

// itemCompletions lists the items of the selected global list. Completion
// runs without the pre-run hooks, so the config is loaded here.
func (e *env) itemCompletions(kind *options.KindOptions) []string {
	k, err := kind.Kind()
	if err != nil {
		k = day.Tasks
	}
	if e.cfg == nil {
		if err := e.setup(&cobra.Command{}); err != nil {
			return nil
		}
	}
	j, err := e.open()
	if err != nil {
		return nil
	}
	defer func() { _ = e.close() }()
	return j.List(k)
}
