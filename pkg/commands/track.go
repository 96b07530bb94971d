package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/track"
)

func addScore(topLevel *cobra.Command, e *env) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "score <0-10|+N|-N>",
		Short: "Set the score of a day.",
		Long:  options.Wrap80("Set the score of a day from 0 to 10. A leading + or - moves the current score instead. Scores outside 0 to 10 are clamped."),
		Example: `
daybook score 7
daybook score +1
daybook score -- -2 --on yesterday
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			value, relative, err := track.ParseScore(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			date, err := on.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			s := track.Score{
				Journal:  j,
				Date:     date,
				Value:    value,
				Relative: relative,
				Output:   output,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addNote(topLevel *cobra.Command, e *env) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}
	var appendNote bool

	cmd := &cobra.Command{
		Use:   "note <text...|->",
		Short: "Write the notes of a day.",
		Long:  options.Wrap80("Replace the notes of a day with text, or add it as a new line with --append. A single - reads the text from stdin. Notes may use Markdown, which the html export renders."),
		Example: `
daybook note slept well, long walk
daybook note --append "called mom"
cat notes.md | daybook note - --on yesterday
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text := strings.Join(args, " ")
			if len(args) == 1 && args[0] == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return output.HandleError(err)
				}
				text = strings.TrimRight(string(b), "\n")
			}
			date, err := on.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			n := track.Note{
				Journal: j,
				Date:    date,
				Text:    text,
				Append:  appendNote,
				Output:  output,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&appendNote, "append", "a", false,
		"Add the text as a new line instead of replacing the notes.")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command, e *env) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}
	kind := &options.KindOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "toggle [item...]",
		Aliases: []string{"tick", "check"},
		Short:   "Mark a task or wellness item done, or undo it.",
		Long:    options.Wrap80("Flip one item of a day's checklist. The item is matched against the day's items: exact names first, then case-insensitive, then the closest fuzzy match."),
		Example: `
daybook toggle read
daybook toggle --list wellness water
daybook toggle -i --list wellness --on yesterday
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive && len(args) == 0 {
				return errors.New("name an item to toggle, or use --interactive")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return e.itemCompletions(kind), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			k, err := kind.Kind()
			if err != nil {
				return output.HandleError(err)
			}
			date, err := on.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			j, err := e.open()
			if err != nil {
				return output.HandleError(err)
			}
			t := track.Toggle{
				Journal: j,
				Date:    date,
				Kind:    k,
				Query:   strings.Join(args, " "),
				Output:  output,
				Out:     cmd.OutOrStdout(),
			}
			if i.Interactive {
				t.Pick = promptItem(cmd)
			}
			return output.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddKindArgs(cmd, kind)
	options.AddOnArgs(cmd, on)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
