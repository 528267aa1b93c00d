package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Glamour renders the whole entry as Markdown, so emphasis and lists are
// styled along with the headings.
type Glamour struct {
	renderer *glamour.TermRenderer
}

// NewGlamour builds a Markdown renderer wrapping at width columns.
func NewGlamour(width int) (*Glamour, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Glamour{renderer: r}, nil
}

// Render implements Renderer.
func (g *Glamour) Render(content string) (string, error) {
	out, err := g.renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// WithWidth implements Resizable.
func (g *Glamour) WithWidth(width int) (Renderer, error) {
	resized, err := NewGlamour(width)
	if err != nil {
		return nil, err
	}
	return resized, nil
}
