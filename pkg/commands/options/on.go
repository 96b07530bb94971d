package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/day"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string
	now      func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on=yesterday.`)
}

// GetOn returns the record key for the selected day.
func (o *OnOptions) GetOn() (string, error) {
	now := time.Now
	if o.now != nil {
		now = o.now
	}
	return day.ParseDate(o.OnString, now())
}
