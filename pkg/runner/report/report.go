// Package report prints score and completion summaries.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/report"
)

// Report summarizes the Days days ending on End.
type Report struct {
	Journal *journal.Journal
	End     time.Time
	Days    int
	Output  *options.OutputOptions
	Out     io.Writer
}

func (n *Report) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not report, no journal")
	}
	if n.Days < 1 {
		return errors.New("report window must cover at least one day")
	}

	from, to := report.Window(n.End, n.Days)
	s := report.Summarize(n.Journal.Range(from, to), from, to)
	if n.Output.Structured() {
		return n.Output.Write(n.Out, s)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Report(s)
	return nil
}
