package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/report"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Lookup finds the record for a date key without creating it.
type Lookup func(date string) (day.Record, bool)

// Month prints a week grid of m. Days with a record are colored by score
// band; today is underlined.
func (pp *PrettyPrint) Month(m calendar.Month, lookup Lookup, today time.Time) {
	w := pp.out()
	tf := color.New(color.Bold)

	title := m.String()
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = color.New(color.Faint).Fprintln(w, "Su Mo Tu We Th Fr Sa")

	d := m.StartDay()
	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	empty := color.New(color.Faint)
	recorded := 0
	for _, t := range m.Days() {
		printer := empty
		if rec, ok := lookup(day.Key(t)); ok {
			printer = BandColor(report.ScoreBand(rec.Score))
			recorded++
		}
		if day.Key(t) == day.Key(today) {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(w, "%2d", t.Day())
		_, _ = fmt.Fprint(w, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = empty.Fprintf(w, "\n%d of %d days recorded\n\n", recorded, m.DaysIn())
}
