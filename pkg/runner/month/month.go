// Package month prints a month of recorded days.
package month

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/runner/show"
)

// View is the structured form of a month.
type View struct {
	Month string      `json:"month" yaml:"month"`
	Days  []show.View `json:"days" yaml:"days"`
}

type Month struct {
	Journal *journal.Journal
	Month   calendar.Month
	Today   time.Time
	Output  *options.OutputOptions
	Out     io.Writer
}

// Do prints the month grid. Days without a record are shown but not
// created.
func (n *Month) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show month, no journal")
	}

	if n.Output.Structured() {
		days := n.Month.Days()
		recs := n.Journal.Range(day.Key(days[0]), day.Key(days[len(days)-1]))
		v := View{Month: n.Month.Key(), Days: make([]show.View, 0, len(recs))}
		for _, rec := range recs {
			v.Days = append(v.Days, show.NewView(rec))
		}
		return n.Output.Write(n.Out, v)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Month(n.Month, n.Journal.Lookup, n.Today)
	return nil
}
