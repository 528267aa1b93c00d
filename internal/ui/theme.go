package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the colours and styles of the browser screen.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	Title    lipgloss.Style
	Card     lipgloss.Style
	Nav      lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Alert    lipgloss.Style
}

// DefaultTheme mirrors the light card layout of the web page with dark-mode equivalents.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary: lipgloss.AdaptiveColor{Light: "#2980B9", Dark: "#8BE9FD"},
		Subtext: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#BFBFBF"},
		Border:  lipgloss.AdaptiveColor{Light: "#E1E4E8", Dark: "#44475A"},
		Error:   lipgloss.AdaptiveColor{Light: "#D80000", Dark: "#FF5555"},
	}

	t.Title = r.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Nav = r.NewStyle().
		Foreground(t.Subtext).
		Padding(0, 1)

	t.Selected = r.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Muted = r.NewStyle().
		Foreground(t.Subtext).
		PaddingLeft(2)

	t.Alert = r.NewStyle().
		Foreground(t.Error).
		Bold(true)

	return t
}

// cardFrame reports the columns and rows the card border and padding occupy.
func (t Theme) cardFrame() (int, int) {
	return t.Card.GetHorizontalFrameSize(), t.Card.GetVerticalFrameSize()
}
