package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/report"
	"tableflip.dev/daybook/pkg/tui/grid"
)

const layoutLong = "Monday, January 2, 2006"

func (m Model) View() string {
	var sections []string

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewMonth(),
		"  ",
		m.viewDay(),
	))

	switch m.mode {
	case modeNotes:
		sections = append(sections, m.theme.Heading.Render("Notes for "+m.Date()), m.editor.View(),
			m.help.View(editorKeys{Save: m.keys.Save, Cancel: m.keys.Cancel}))
	case modeList:
		sections = append(sections, m.theme.Heading.Render("Edit "+strings.ToLower(m.editKind.Title())+", one per line"), m.editor.View(),
			m.help.View(editorKeys{Save: m.keys.Save, Cancel: m.keys.Cancel}))
	case modeConfirmReset:
		sections = append(sections, m.theme.Error.Render(
			fmt.Sprintf("Reset %s to defaults? Every day loses completion of removed items. (y/N)", strings.ToLower(m.editKind.Title()))))
	default:
		sections = append(sections, m.viewNotes(), m.help.View(m.keys))
	}

	if m.status != "" {
		style := m.theme.Status
		if m.errState {
			style = m.theme.Error
		}
		sections = append(sections, style.Render(m.status))
	}
	return strings.Join(sections, "\n") + "\n"
}

func (m Model) viewMonth() string {
	today := day.Key(m.now())
	days := make([]grid.Day, 0, m.month.DaysIn())
	for i, t := range m.month.Days() {
		d := grid.Day{
			Day:        i + 1,
			IsToday:    day.Key(t) == today,
			IsSelected: i == m.active,
		}
		if rec, ok := m.journal.Lookup(day.Key(t)); ok {
			d.Recorded = true
			d.Band = report.ScoreBand(rec.Score)
		}
		days = append(days, d)
	}

	body := m.theme.Title.Render(m.month.String()) + "\n" +
		grid.Render(m.month, days, grid.DefaultOptions())
	return m.theme.Panel.Render(body)
}

func (m Model) viewDay() string {
	var b strings.Builder

	title := m.rec.Date
	if t, err := day.ParseKey(m.rec.Date); err == nil {
		title = t.Format(layoutLong)
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.theme.ScoreBar(m.rec.Score))
	b.WriteString(fmt.Sprintf(" %d/10\n", m.rec.Score))
	if m.rec.Quote != "" {
		b.WriteString(m.theme.Quote.Render(wordwrap.String("“"+m.rec.Quote+"”", 40)))
		b.WriteString("\n")
	}

	stats := m.rec.Stats()
	b.WriteString("\n")
	b.WriteString(m.viewChecklist(day.Tasks, stats.TaskDone, stats.TaskTotal))
	b.WriteString("\n")
	b.WriteString(m.viewChecklist(day.Wellness, stats.WellnessDone, stats.WellnessTotal))

	return m.theme.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewChecklist(kind day.Kind, done, total int) string {
	var b strings.Builder
	heading := m.theme.Heading
	if kind == m.pane {
		heading = heading.Inherit(m.theme.Cursor)
	}
	b.WriteString(heading.Render(kind.Title()))
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf(" %d/%d", done, total)))
	b.WriteString("\n")

	items := m.items(kind)
	if len(items) == 0 {
		b.WriteString(m.theme.Muted.Render("  none, press e to add"))
		b.WriteString("\n")
		return b.String()
	}
	for i, item := range items {
		pointer := "  "
		if kind == m.pane && i == m.cursor[kind] {
			pointer = m.theme.Cursor.Render("> ")
		}
		if item.Done {
			b.WriteString(pointer + "[x] " + m.theme.Done.Render(item.Name))
		} else {
			b.WriteString(pointer + "[ ] " + item.Name)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewNotes() string {
	if m.rec.Notes == "" {
		return m.theme.Muted.Render("No notes. Press n to write some.")
	}
	return m.theme.Heading.Render("Notes") + "\n" + wordwrap.String(m.rec.Notes, 72)
}
