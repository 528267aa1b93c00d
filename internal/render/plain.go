package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k3a/html2text"
)

// Plain renders headings as underlined text and strips inline HTML from body
// lines, for output piped away from a terminal.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(content string) (string, error) {
	lines := splitLines(content)
	for i, line := range lines {
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			title := html2text.HTML2Text(strings.TrimRight(match[1], "\r"))
			lines[i] = title + "\n" + strings.Repeat("=", max(1, lipgloss.Width(title)))
			continue
		}
		if strings.ContainsRune(line, '<') {
			lines[i] = html2text.HTML2Text(line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.Split(input, "\n")
}
