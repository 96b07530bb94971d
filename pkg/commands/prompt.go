package commands

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/runner/track"
)

// promptItem asks for one of a day's items on the command's terminal.
func promptItem(cmd *cobra.Command) track.Picker {
	return func(kind day.Kind, items []day.Item) (string, error) {
		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜  {{ if .Done }}[x]{{ else }}[ ]{{ end }} {{ .Name | cyan }}",
			Inactive: "   {{ if .Done }}[x]{{ else }}[ ]{{ end }} {{ .Name }}",
			Selected: "➜  {{ .Name | cyan }}",
		}

		searcher := func(input string, index int) bool {
			name := strings.ReplaceAll(strings.ToLower(items[index].Name), " ", "")
			input = strings.ReplaceAll(strings.ToLower(input), " ", "")
			return strings.Contains(name, input)
		}

		prompt := promptui.Select{
			HideHelp:  true,
			Label:     "Toggle which " + strings.ToLower(kind.Title()),
			Items:     items,
			Templates: templates,
			Size:      10,
			Searcher:  searcher,
			Stdin:     io.NopCloser(cmd.InOrStdin()),
			Stdout:    nopWriteCloser{cmd.OutOrStdout()},
		}

		i, _, err := prompt.Run()
		if err != nil {
			return "", err
		}
		return items[i].Name, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
