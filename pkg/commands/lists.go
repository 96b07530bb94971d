package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/runner/lists"
)

func addLists(topLevel *cobra.Command, e *env) {
	output := &options.OutputOptions{}
	var which string

	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Show and edit the global task and wellness lists.",
		Long:    options.Wrap80("Every day is tracked against the same two lists. Changing a list rebuilds every stored day: kept items keep their completion, new items start not done and removed items lose their history."),
		Example: `
daybook lists
daybook lists --only wellness --json
daybook lists set Read Write "Call a friend"
daybook lists add --list wellness "Drink water"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			var k day.Kind
			if which != "" {
				var err error
				if k, err = day.ParseKind(which); err != nil {
					return output.HandleError(err)
				}
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			s := lists.Show{Journal: j, Kind: k, Output: output, Out: cmd.OutOrStdout()}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&which, "only", "", "Show only tasks or wellness.")
	options.AddOutputArg(cmd, output)

	addListEdit(cmd, e, &cobra.Command{
		Use:   "set <item...>",
		Short: "Replace a list with the given items, in order.",
		Args:  cobra.MinimumNArgs(1),
	}, func(args []string) (func([]string) ([]string, error), error) {
		return lists.Replace(args), nil
	})

	var at int
	add := &cobra.Command{
		Use:   "add <item>",
		Short: "Add an item to a list.",
		Args:  cobra.ExactArgs(1),
	}
	add.Flags().IntVar(&at, "at", 0, "Position to insert at, 1 is first. Default appends.")
	addListEdit(cmd, e, add, func(args []string) (func([]string) ([]string, error), error) {
		return lists.Add(args[0], at), nil
	})

	addListEdit(cmd, e, &cobra.Command{
		Use:     "remove <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from a list. Its history is dropped from every day.",
		Args:    cobra.ExactArgs(1),
	}, func(args []string) (func([]string) ([]string, error), error) {
		return lists.Remove(args[0]), nil
	})

	addListEdit(cmd, e, &cobra.Command{
		Use:   "rename <item> <new name>",
		Short: "Rename an item. Days forget its completion, as for a remove and an add.",
		Args:  cobra.ExactArgs(2),
	}, func(args []string) (func([]string) ([]string, error), error) {
		return lists.Rename(args[0], args[1]), nil
	})

	addListEdit(cmd, e, &cobra.Command{
		Use:   "move <item> <position>",
		Short: "Move an item to a position, 1 is first.",
		Args:  cobra.ExactArgs(2),
	}, func(args []string) (func([]string) ([]string, error), error) {
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", args[1])
		}
		return lists.Move(args[0], to), nil
	})

	addListReset(cmd, e)

	topLevel.AddCommand(cmd)
}

// addListEdit wires an editing subcommand. change turns the arguments into
// the list change to apply.
func addListEdit(parent *cobra.Command, e *env, cmd *cobra.Command, change func(args []string) (func([]string) ([]string, error), error)) {
	kind := &options.KindOptions{}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		k, err := kind.Kind()
		if err != nil {
			return err
		}
		c, err := change(args)
		if err != nil {
			return err
		}
		j, err := e.open()
		if err != nil {
			return err
		}
		edit := lists.Edit{Journal: j, Kind: k, Change: c, Out: cmd.OutOrStdout()}
		return edit.Do(cmd.Context())
	}
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return e.itemCompletions(kind), cobra.ShellCompDirectiveNoFileComp
	}

	options.AddKindArgs(cmd, kind)
	parent.AddCommand(cmd)
}

func addListReset(parent *cobra.Command, e *env) {
	kind := &options.KindOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore a list to the configured defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			k, err := kind.Kind()
			if err != nil {
				return err
			}
			j, err := e.open()
			if err != nil {
				return err
			}
			r := lists.Reset{Journal: j, Kind: k, Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}

	options.AddKindArgs(cmd, kind)
	parent.AddCommand(cmd)
}
