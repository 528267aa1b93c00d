// Package render turns the raw text of a dictionary entry into display markup.
//
// Entry bodies are Markdown-ish text where lines starting with "###" open a
// section. Every renderer transforms those heading lines and leaves the rest of
// the body in place and in order.
package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownRenderer is returned by ByName for unsupported renderer names.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Names lists the renderers accepted by ByName.
var Names = []string{"terminal", "html", "plain", "markdown"}

// Renderer converts entry content into display markup.
type Renderer interface {
	Render(content string) (string, error)
}

// Resizable is implemented by renderers whose output depends on the display
// width. WithWidth returns a copy laid out for width columns.
type Resizable interface {
	Renderer
	WithWidth(width int) (Renderer, error)
}

var headingPattern = regexp.MustCompile(`(?m)^###[ \t]+(.*)$`)

// replaceHeadings rewrites every heading line with the output of fn, which
// receives the heading title.
func replaceHeadings(content string, fn func(title string) string) string {
	return headingPattern.ReplaceAllStringFunc(content, func(line string) string {
		match := headingPattern.FindStringSubmatch(line)
		return fn(strings.TrimRight(match[1], "\r"))
	})
}

// ByName builds the renderer registered under name. width bounds wrapping for
// renderers that wrap.
func ByName(name string, width int) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "terminal":
		return NewTerminal(width), nil
	case "html":
		return HTML{}, nil
	case "plain":
		return Plain{}, nil
	case "markdown":
		g, err := NewGlamour(width)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownRenderer, name, strings.Join(Names, ", "))
	}
}
