package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"opennotes/internal/tui/theme"
)

var (
	editorLabelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	saveHintStyle    = theme.Muted
)

// editorModel holds the title field and body of the note being written.
// loaded is the filename last opened or saved into it, used to tell an
// overwrite of the same note from a collision with a different one.
//
// The textarea rewrites tabs, CRLF and control bytes on SetValue, so the
// body read from disk is kept in raw and handed back until the user edits.
type editorModel struct {
	title  textinput.Model
	body   textarea.Model
	loaded string
	raw    string
	synced string // textarea value right after Load
}

func newEditorModel() editorModel {
	ti := textinput.New()
	ti.Placeholder = "Note title..."
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0

	return editorModel{title: ti, body: ta}
}

func (e *editorModel) Load(filename, title, body string) {
	e.loaded = filename
	e.title.SetValue(title)
	e.title.CursorEnd()
	e.body.SetValue(body)
	e.raw = body
	e.synced = e.body.Value()
}

func (e editorModel) Title() string {
	return e.title.Value()
}

func (e *editorModel) SetTitle(title string) {
	e.title.SetValue(title)
	e.title.CursorEnd()
}

// Body returns the note text, byte for byte as loaded when nothing changed
func (e editorModel) Body() string {
	if v := e.body.Value(); v != e.synced {
		return v
	}
	return e.raw
}

func (e *editorModel) SetSize(width, height int) {
	label := "Title: "
	e.title.Width = max(1, width-lipgloss.Width(label)-1)
	e.body.SetWidth(max(1, width))
	// Title line and save hint take two rows
	e.body.SetHeight(max(1, height-2))
}

// Focus moves the cursor to the title field or body
func (e *editorModel) Focus(f focusArea) tea.Cmd {
	e.title.Blur()
	e.body.Blur()
	switch f {
	case focusTitle:
		return e.title.Focus()
	case focusBody:
		return e.body.Focus()
	}
	return nil
}

func (e editorModel) Update(f focusArea, msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd
	switch f {
	case focusTitle:
		e.title, cmd = e.title.Update(msg)
	case focusBody:
		e.body, cmd = e.body.Update(msg)
	}
	return e, cmd
}

func (e editorModel) View() string {
	return editorLabelStyle.Render("Title: ") + e.title.View() + "\n" +
		e.body.View() + "\n" +
		saveHintStyle.Render("[ctrl+s] Save Note")
}
