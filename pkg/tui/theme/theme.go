// Package theme centralizes Lip Gloss styles for the terminal UI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/daybook/pkg/day"
)

// Theme groups the styles used across the UI.
type Theme struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Quote    lipgloss.Style
	Done     lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Focused  lipgloss.Style
	ScoreLow colorful.Color
	ScoreTop colorful.Color
}

// Default returns the built-in theme.
func Default() Theme {
	low, _ := colorful.Hex("#e06c75")
	top, _ := colorful.Hex("#98c379")
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Heading:  lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Quote:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Panel:    panel,
		Focused:  panel.BorderForeground(lipgloss.Color("63")),
		ScoreLow: low,
		ScoreTop: top,
	}
}

// ScoreColor is the gradient color of a score.
func (t Theme) ScoreColor(score int) colorful.Color {
	score = day.ClampScore(score)
	return t.ScoreLow.BlendLuv(t.ScoreTop, float64(score)/float64(day.MaxScore)).Clamped()
}

// ScoreBar renders a ten cell bar, each filled cell shaded along the
// gradient.
func (t Theme) ScoreBar(score int) string {
	score = day.ClampScore(score)
	var b strings.Builder
	for i := 1; i <= day.MaxScore; i++ {
		if i > score {
			b.WriteString(t.Muted.Render("░"))
			continue
		}
		c := t.ScoreColor(i).Hex()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
	}
	return b.String()
}
