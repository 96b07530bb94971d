package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/report"
)

const (
	layoutLong = "Monday, January 2, 2006"
	wrapWidth  = 72
)

// DetectColor turns colored output off when the environment asks for it
// (NO_COLOR, CLICOLOR=0).
func DetectColor() {
	if termenv.EnvNoColor() {
		color.NoColor = true
	}
}

// PrettyPrint writes human readable views to Out, or color.Output when Out
// is nil.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// BandColor is the color scores in band are printed with.
func BandColor(b report.Band) *color.Color {
	switch b {
	case report.BandLow:
		return color.New(color.FgRed)
	case report.BandMid:
		return color.New(color.FgYellow)
	case report.BandGood:
		return color.New(color.FgGreen)
	}
	return color.New(color.FgHiGreen, color.Bold)
}

// ScoreBar renders a score as a ten cell bar.
func ScoreBar(score int) string {
	score = day.ClampScore(score)
	return strings.Repeat("█", score) + strings.Repeat("░", day.MaxScore-score)
}

// Day prints one record with its progress counts. Items follow the order of
// the global lists.
func (pp *PrettyPrint) Day(rec day.Record, tasks, wellness []string) {
	w := pp.out()
	faint := color.New(color.Faint)
	italic := color.New(color.Italic, color.Faint)

	title := rec.Date
	if t, err := day.ParseKey(rec.Date); err == nil {
		title = t.Format(layoutLong)
	}
	pp.Title(title)

	sc := BandColor(report.ScoreBand(rec.Score))
	_, _ = fmt.Fprint(w, "Score  ")
	_, _ = sc.Fprintf(w, "%s %d/10\n", ScoreBar(rec.Score), rec.Score)

	if rec.Quote != "" {
		_, _ = italic.Fprintf(w, "\n%s\n", wordwrap.String("“"+rec.Quote+"”", wrapWidth))
	}

	stats := rec.Stats()
	pp.checklist(day.Tasks, rec.Ordered(day.Tasks, tasks), stats.TaskDone, stats.TaskTotal)
	pp.checklist(day.Wellness, rec.Ordered(day.Wellness, wellness), stats.WellnessDone, stats.WellnessTotal)

	_, _ = fmt.Fprintln(w)
	_, _ = color.New(color.Bold).Fprintln(w, "Notes")
	if rec.Notes == "" {
		_, _ = faint.Fprintln(w, " none")
	} else {
		_, _ = fmt.Fprintln(w, Notes(rec.Notes))
	}
	_, _ = fmt.Fprintln(w)
}

// Notes renders Markdown notes for the terminal. Without color the text is
// only wrapped.
func Notes(md string) string {
	if color.NoColor {
		return wordwrap.String(md, wrapWidth)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return wordwrap.String(md, wrapWidth)
	}
	out, err := r.Render(md)
	if err != nil {
		return wordwrap.String(md, wrapWidth)
	}
	return strings.Trim(out, "\n")
}

func (pp *PrettyPrint) checklist(kind day.Kind, items []day.Item, done, total int) {
	w := pp.out()
	b := color.New(color.Bold)
	faint := color.New(color.Faint)
	strike := color.New(color.Faint, color.CrossedOut)

	_, _ = fmt.Fprintln(w)
	_, _ = b.Fprint(w, kind.Title())
	_, _ = faint.Fprintf(w, " %d/%d\n", done, total)
	if len(items) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, " none")
		return
	}
	for _, item := range items {
		if item.Done {
			_, _ = fmt.Fprint(w, " ☑ ")
			_, _ = strike.Fprintln(w, item.Name)
		} else {
			_, _ = fmt.Fprintf(w, " ☐ %s\n", item.Name)
		}
	}
}

// Lists prints both global lists with their positions.
func (pp *PrettyPrint) Lists(tasks, wellness []string) {
	for _, kind := range day.Kinds() {
		items := tasks
		if kind == day.Wellness {
			items = wellness
		}
		pp.List(kind, items)
	}
}

// List prints one global list with positions.
func (pp *PrettyPrint) List(kind day.Kind, items []string) {
	w := pp.out()
	pp.Title(kind.Title())
	if len(items) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, item := range items {
		tbl.AddRow(fmt.Sprintf("%2d", i+1), item)
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w)
}

// Report prints a summary table.
func (pp *PrettyPrint) Report(s report.Summary) {
	w := pp.out()
	pp.Title(fmt.Sprintf("%s – %s", s.From, s.To))
	if len(s.Rows) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " no recorded days\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Date"), bold("Score"), bold("Tasks"), bold("Wellness"))
	for _, row := range s.Rows {
		weekday := row.Date
		if t, err := day.ParseKey(row.Date); err == nil {
			weekday = t.Format("Mon Jan 2")
		}
		tbl.AddRow(
			weekday,
			BandColor(report.ScoreBand(row.Score)).Sprintf("%2d", row.Score),
			fmt.Sprintf("%d/%d", row.Stats.TaskDone, row.Stats.TaskTotal),
			fmt.Sprintf("%d/%d", row.Stats.WellnessDone, row.Stats.WellnessTotal),
		)
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w)

	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(w, "%d days, average score %.1f, tasks %.0f%%, wellness %.0f%%\n\n",
		len(s.Rows), s.AverageScore, s.TaskRate*100, s.WellnessRate*100)
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Today returns the start of the current local day.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
