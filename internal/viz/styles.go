package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Canvas lipgloss.Style
	Help   lipgloss.Style
	Panel  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Canvas: lipgloss.NewStyle().Foreground(t.Accent),
		Help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// Field is one label/value row of a summary panel.
type Field struct {
	Label, Value string
}

// Summary renders a titled panel of label/value rows.
func Summary(t Theme, title string, fields []Field) string {
	s := NewStyles(t)
	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")
	for i, f := range fields {
		b.WriteString(s.Label.Render(f.Label))
		b.WriteString(s.Value.Render(f.Value))
		if i < len(fields)-1 {
			b.WriteString("\n")
		}
	}
	return s.Panel.Render(b.String())
}

// ProgressBar renders a fixed-width bar for a fraction in [0, 1].
func ProgressBar(t Theme, percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	done := lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return done + rest
}
