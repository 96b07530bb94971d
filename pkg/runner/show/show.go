// Package show prints a single day.
package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
)

// View is the structured form of a shown day.
type View struct {
	day.Record `yaml:",inline"`
	Stats      day.Stats `json:"stats" yaml:"stats"`
}

// NewView pairs rec with its progress counts.
func NewView(rec day.Record) View {
	return View{Record: rec, Stats: rec.Stats()}
}

type Show struct {
	Journal *journal.Journal
	Date    string
	Output  *options.OutputOptions
	Out     io.Writer
}

// Do prints the record for Date, materializing it if it has never been
// seen. Nothing is written to storage.
func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show, no journal")
	}

	rec := n.Journal.GetOrCreate(n.Date)
	if n.Output.Structured() {
		return n.Output.Write(n.Out, NewView(rec))
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Day(rec, n.Journal.Tasks(), n.Journal.Wellness())
	return nil
}
