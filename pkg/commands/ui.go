package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Open the interactive month and day view.",
		Long: `The ui shows the current month colored by score next to the selected day.
Move between days with the arrow keys, toggle items with space, set the
score with 0-9 or +/-, and press n to edit notes. Press ? for every key.

Writes made by other daybook commands show up while the ui is open when the
backend supports watching.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			j, err := e.open()
			if err != nil {
				return err
			}
			u := ui.UI{Journal: j, KV: e.kv}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
