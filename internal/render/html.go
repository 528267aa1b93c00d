package render

import "fmt"

// HTML renders heading lines as <h3> elements.
type HTML struct{}

// Render implements Renderer.
func (HTML) Render(content string) (string, error) {
	return replaceHeadings(content, func(title string) string {
		return "<h3>" + title + "</h3>"
	}), nil
}

// Card wraps rendered HTML in the dict-card container used by the page stylesheet.
func Card(body string) string {
	return fmt.Sprintf("<div class=\"dict-card\">\n%s\n</div>", body)
}
