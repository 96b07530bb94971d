package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/daybook/pkg/day"
)

// KindOptions picks one of the global lists.
type KindOptions struct {
	KindString string
}

func AddKindArgs(cmd *cobra.Command, o *KindOptions) {
	if o.KindString == "" {
		o.KindString = day.Tasks.String()
	}
	cmd.Flags().VarP((*kindValue)(&o.KindString), "list", "l", "Which list, tasks or wellness.")
	_ = cmd.RegisterFlagCompletionFunc("list", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{day.Tasks.String(), day.Wellness.String()}, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *KindOptions) Kind() (day.Kind, error) {
	return day.ParseKind(o.KindString)
}

// kindValue rejects unknown list names while flags are parsed and stores
// the canonical name.
type kindValue string

var _ pflag.Value = (*kindValue)(nil)

func (v *kindValue) String() string { return string(*v) }

func (v *kindValue) Set(s string) error {
	k, err := day.ParseKind(s)
	if err != nil {
		return err
	}
	*v = kindValue(k)
	return nil
}

func (v *kindValue) Type() string { return "list" }
