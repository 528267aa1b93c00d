package render

import "github.com/charmbracelet/lipgloss"

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#2C3E50", Dark: "#8BE9FD"}
	ruleColor    = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#6272A4"}
)

// Terminal styles heading lines with lipgloss and leaves the body as-is.
type Terminal struct {
	heading lipgloss.Style
}

// NewTerminal builds a terminal renderer whose heading rule spans width columns.
func NewTerminal(width int) Terminal {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(headingColor).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(ruleColor)
	if width > 0 {
		style = style.Width(width)
	}
	return Terminal{heading: style}
}

// Render implements Renderer.
func (t Terminal) Render(content string) (string, error) {
	return replaceHeadings(content, func(title string) string {
		return t.heading.Render(title)
	}), nil
}

// WithWidth implements Resizable.
func (t Terminal) WithWidth(width int) (Renderer, error) {
	return NewTerminal(width), nil
}
