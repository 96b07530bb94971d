// Package track provides the runners that change a single day: its score,
// its notes and its checklists.
package track

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/lists"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/report"
	"tableflip.dev/daybook/pkg/runner/show"
)

// Score sets the score of a day, or moves it by Value when Relative.
type Score struct {
	Journal  *journal.Journal
	Date     string
	Value    int
	Relative bool
	Output   *options.OutputOptions
	Out      io.Writer
}

// ParseScore reads "7", "+1" or "-2". A leading sign makes it relative.
func ParseScore(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid score %q, expected 0-10, +N or -N", s)
	}
	return n, strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-"), nil
}

func (n *Score) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not score, no journal")
	}
	v := n.Value
	if n.Relative {
		v += n.Journal.GetOrCreate(n.Date).Score
	}
	n.Journal.Update(n.Date, day.ScorePatch(v))

	rec := n.Journal.GetOrCreate(n.Date)
	if n.Output.Structured() {
		return n.Output.Write(n.Out, show.NewView(rec))
	}
	w := out(n.Out)
	_, _ = fmt.Fprintf(w, "%s  ", rec.Date)
	_, _ = printers.BandColor(report.ScoreBand(rec.Score)).Fprintf(w, "%s %d/10\n", printers.ScoreBar(rec.Score), rec.Score)
	return nil
}

// Note replaces the notes of a day, or adds a line to them with Append.
type Note struct {
	Journal *journal.Journal
	Date    string
	Text    string
	Append  bool
	Output  *options.OutputOptions
	Out     io.Writer
}

func (n *Note) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not note, no journal")
	}
	text := n.Text
	if n.Append {
		if prev := n.Journal.GetOrCreate(n.Date).Notes; prev != "" {
			text = strings.TrimRight(prev, "\n") + "\n" + text
		}
	}
	n.Journal.Update(n.Date, day.NotesPatch(text))

	rec := n.Journal.GetOrCreate(n.Date)
	if n.Output.Structured() {
		return n.Output.Write(n.Out, show.NewView(rec))
	}
	_, _ = fmt.Fprintf(out(n.Out), "%s notes saved (%d characters)\n", rec.Date, len([]rune(rec.Notes)))
	return nil
}

// Picker chooses one item from a day's checklist.
type Picker func(kind day.Kind, items []day.Item) (string, error)

// Toggle flips one checklist item of a day. Query is matched against the
// day's items with lists.Resolve; with no Query the Picker chooses.
type Toggle struct {
	Journal *journal.Journal
	Date    string
	Kind    day.Kind
	Query   string
	Pick    Picker
	Output  *options.OutputOptions
	Out     io.Writer
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not toggle, no journal")
	}

	rec := n.Journal.GetOrCreate(n.Date)
	items := rec.Ordered(n.Kind, n.Journal.List(n.Kind))
	if len(items) == 0 {
		return fmt.Errorf("%s has no %s to toggle", n.Date, n.Kind)
	}

	var item string
	var err error
	switch {
	case n.Query != "":
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		item, err = lists.Resolve(names, n.Query)
	case n.Pick != nil:
		item, err = n.Pick(n.Kind, items)
	default:
		err = errors.New("nothing to toggle, name an item or use --interactive")
	}
	if err != nil {
		return err
	}

	n.Journal.Toggle(n.Date, n.Kind, item)
	rec = n.Journal.GetOrCreate(n.Date)
	if n.Output.Structured() {
		return n.Output.Write(n.Out, show.NewView(rec))
	}

	w := out(n.Out)
	stats := rec.Stats()
	done, total := stats.TaskDone, stats.TaskTotal
	if n.Kind == day.Wellness {
		done, total = stats.WellnessDone, stats.WellnessTotal
	}
	mark := "☐"
	if rec.Items(n.Kind)[item] {
		mark = "☑"
	}
	_, _ = fmt.Fprintf(w, "%s %s  ", mark, item)
	_, _ = color.New(color.Faint).Fprintf(w, "%s %d/%d\n", n.Kind.Title(), done, total)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
