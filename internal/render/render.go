// Package render turns note bodies into styled terminal text or HTML.
// Notes are stored as plain text; markdown is only an interpretation applied
// at display time.
package render

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
)

// DefaultStyle is the glamour style used by the TUI preview
const DefaultStyle = "dark"

// Markdown renders body for a terminal of the given width.
func Markdown(body string, width int, style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("render: markdown renderer: %w", err)
	}

	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return out, nil
}

// HTML converts body to an HTML fragment.
func HTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render: html: %w", err)
	}
	return buf.String(), nil
}
