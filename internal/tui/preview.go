package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"opennotes/internal/logs"
	"opennotes/internal/render"
	"opennotes/internal/tui/theme"
)

const (
	placeholderTitle = "Select a note"
	deletedTitle     = "Note Deleted"
)

var previewTitleStyle = theme.Title

// previewModel is the read-only view of the last opened note
type previewModel struct {
	title    string
	body     string
	markdown bool
	viewport viewport.Model
}

func newPreviewModel(markdown bool) previewModel {
	return previewModel{
		title:    placeholderTitle,
		markdown: markdown,
		viewport: viewport.New(0, 0),
	}
}

func (p *previewModel) Set(title, body string) {
	p.title = title
	p.body = body
	p.syncContent()
	p.viewport.GotoTop()
}

// Reset clears the body and shows title in place of a note
func (p *previewModel) Reset(title string) {
	p.Set(title, "")
}

func (p *previewModel) SetSize(width, height int) {
	p.viewport.Width = width
	// One line for the title
	p.viewport.Height = max(0, height-1)
	p.syncContent()
}

func (p *previewModel) syncContent() {
	content := p.body
	if p.markdown && p.body != "" {
		rendered, err := render.Markdown(p.body, p.viewport.Width, render.DefaultStyle)
		if err != nil {
			logs.Logger.Printf("Error rendering preview for %q: %v", p.title, err)
		} else {
			content = rendered
		}
	}
	if !p.markdown && p.viewport.Width > 0 {
		content = lipgloss.NewStyle().Width(p.viewport.Width).Render(content)
	}
	p.viewport.SetContent(content)
}

func (p previewModel) View() string {
	return previewTitleStyle.Render(truncate(p.title, p.viewport.Width)) + "\n" + p.viewport.View()
}
