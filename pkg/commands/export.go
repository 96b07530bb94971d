package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/export"
)

func addExport(topLevel *cobra.Command, e *env) {
	var (
		format string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every day and both lists as json, yaml or an html page.",
		Example: `
daybook export > backup.json
daybook export --format html --output daybook.html
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			j, err := e.open()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if file != "" && file != "-" {
				f, err := os.Create(file)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			x := export.Export{Journal: j, Format: format, Out: out}
			return x.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatJSON, "Output format: json, yaml or html.")
	cmd.Flags().StringVarP(&file, "output", "o", "", "Write to a file instead of stdout.")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{export.FormatJSON, export.FormatYAML, export.FormatHTML}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command, e *env) {
	var localStorage bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the lists and merge in days from an export.",
		Long: `Import reads a json export, or with --local-storage a dump of the browser
tracker's localStorage, and applies it: both lists are replaced, then every
day in the file is written. Days already stored keep their quote; everything
else comes from the file.`,
		Example: `
daybook import backup.json
daybook import --local-storage localstorage.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import: %w", err)
				}
				defer f.Close()
				in = f
			}

			j, err := e.open()
			if err != nil {
				return err
			}
			i := export.Import{Journal: j, In: in, LocalStorage: localStorage, Out: cmd.OutOrStdout()}
			return i.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&localStorage, "local-storage", false,
		"The file is a localStorage dump of the browser tracker.")

	topLevel.AddCommand(cmd)
}
