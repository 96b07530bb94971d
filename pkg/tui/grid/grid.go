// Package grid renders a month grid for the terminal UI.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/report"
)

// Day describes a single day rendered in the grid.
type Day struct {
	Day        int
	Recorded   bool
	Band       report.Band
	IsToday    bool
	IsSelected bool
}

// Options controls grid styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	BandStyles    map[report.Band]lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line grid for month. Days not listed in days are
// drawn as unrecorded.
func Render(month calendar.Month, days []Day, opts Options) string {
	daysInMonth := month.DaysIn()

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	startOffset := int(month.StartDay())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.Recorded {
		if s, ok := opts.BandStyles[info.Band]; ok {
			style = s
		}
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = opts.SelectedStyle.Inherit(style)
	}
	return style.Render(text)
}

// DefaultOptions returns the styling used for grid rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BandStyles: map[report.Band]lipgloss.Style{
			report.BandLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			report.BandMid:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			report.BandGood:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			report.BandGreat: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		},
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}
