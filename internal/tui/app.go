package tui

import (
	"fmt"

	"opennotes/internal/config"
	"opennotes/internal/logs"
	"opennotes/internal/notes"
	"opennotes/internal/tui/messages"
	"opennotes/internal/tui/shared"
	"opennotes/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusTitle
	focusBody
)

const appTitle = "Open Notes"

// AppModel is the whole application state: the three regions, the store
// they act on, and whatever prompt is currently open.
type AppModel struct {
	cfg     *config.Config
	store   *notes.Store
	keys    keyMap
	help    help.Model
	sidebar sidebarModel
	preview previewModel
	editor  editorModel
	focus   focusArea

	confirm *shared.ConfirmationModal
	pending tea.Msg // action to re-send once the prompt is confirmed

	status    string
	statusErr bool
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewAppModel creates the root model, making sure the notes directory exists
// and loading the initial list.
func NewAppModel(cfg *config.Config, store *notes.Store) AppModel {
	m := AppModel{
		cfg:     cfg,
		store:   store,
		keys:    newKeyMap(),
		help:    help.New(),
		preview: newPreviewModel(cfg.Preview == config.PreviewMarkdown),
		editor:  newEditorModel(),
		focus:   focusSidebar,
	}

	if err := store.Ensure(); err != nil {
		m.fail("Error creating notes folder", err)
	}
	m.refresh()

	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case messages.OpenNoteMsg:
		m.open(msg.Filename)
		return m, nil

	case messages.DeleteNoteMsg:
		if m.cfg.ConfirmDelete && !msg.Confirmed {
			msg.Confirmed = true
			m.ask("Delete note?", msg.Filename, msg)
			return m, nil
		}
		m.delete(msg.Filename)
		return m, nil

	case messages.SaveNoteMsg:
		if m.cfg.ConfirmOverwrite && !msg.Confirmed && m.editor.Title() != "" {
			filename := m.store.Filename(m.editor.Title())
			if filename != m.editor.loaded && m.store.Exists(filename) {
				msg.Confirmed = true
				m.ask("Overwrite existing note?", filename, msg)
				return m, nil
			}
		}
		m.save()
		return m, nil

	case shared.ConfirmationResultMsg:
		pending := m.pending
		m.confirm = nil
		m.pending = nil
		if msg.Confirmed && pending != nil {
			return m, func() tea.Msg { return pending }
		}
		m.setStatus("Cancelled")
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		if m.confirm != nil {
			return m, m.confirm.Update(msg)
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Save):
			return m, messages.SaveNote()
		case key.Matches(msg, m.keys.NextFocus):
			cmd := m.setFocus((m.focus + 1) % 3)
			return m, cmd
		case key.Matches(msg, m.keys.PrevFocus):
			cmd := m.setFocus((m.focus + 2) % 3)
			return m, cmd
		}

		if m.focus == focusSidebar {
			return m.updateSidebar(msg)
		}

		if key.Matches(msg, m.keys.Leave) {
			cmd := m.setFocus(focusSidebar)
			return m, cmd
		}
	}

	// Everything else (typing, cursor blink) belongs to the editor
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(m.focus, msg)
	return m, cmd
}

func (m AppModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.sidebar.Up()
	case key.Matches(msg, m.keys.Down):
		m.sidebar.Down()
	case key.Matches(msg, m.keys.Open):
		if filename, ok := m.sidebar.Selected(); ok {
			return m, messages.OpenNote(filename)
		}
	case key.Matches(msg, m.keys.Delete):
		if filename, ok := m.sidebar.Selected(); ok {
			return m, messages.DeleteNote(filename)
		}
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.preview.viewport, cmd = m.preview.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// open loads a note into both the preview and the editor. On failure the
// previous state is left as it was.
func (m *AppModel) open(filename string) {
	note, err := m.store.Get(filename)
	if err != nil {
		m.fail("Error opening note", err)
		return
	}

	m.preview.Set(note.Title, note.Body)
	m.editor.Load(note.Filename, note.Title, note.Body)
	m.setStatus("Opened " + note.Title)
}

// save writes the editor under its sanitized title and shows that title back
// in the editor, since it may differ from what was typed.
func (m *AppModel) save() {
	title := m.editor.Title()
	if title == "" {
		m.fail("Error saving note", notes.ErrEmptyTitle)
		return
	}

	filename, err := m.store.Write(title, m.editor.Body())
	if err != nil {
		m.fail("Error saving note", err)
	}

	m.refresh()
	m.editor.SetTitle(notes.Sanitize(title))

	if err == nil {
		m.editor.loaded = filename
		m.setStatus("Saved " + filename)
	}
}

// delete removes a note and resets the preview. The editor keeps its
// contents even when they came from the deleted note.
func (m *AppModel) delete(filename string) {
	err := m.store.Delete(filename)
	if err != nil {
		m.fail("Error deleting note", err)
	}

	m.refresh()
	m.preview.Reset(deletedTitle)

	if err == nil {
		m.setStatus("Deleted " + filename)
	}
}

// refresh rebuilds the sidebar from a fresh listing
func (m *AppModel) refresh() {
	entries, err := m.store.List()
	if err != nil {
		logs.Logger.Printf("Error listing notes: %v", err)
		entries = nil
	}
	m.sidebar.SetEntries(entries)
}

func (m *AppModel) ask(question, details string, pending tea.Msg) {
	m.confirm = shared.NewConfirmationModal(question, details, min(50, max(20, m.width-4)))
	m.pending = pending
}

func (m *AppModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	return m.editor.Focus(f)
}

func (m *AppModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *AppModel) fail(action string, err error) {
	logs.Logger.Printf("%s: %v", action, err)
	m.status = fmt.Sprintf("%s: %v", action, err)
	m.statusErr = true
}

func (m AppModel) layout() (sidebarWidth, rightWidth, previewHeight, editorHeight int) {
	sidebarWidth = max(20, min(40, m.width/3))
	rightWidth = max(0, m.width-sidebarWidth)
	contentHeight := max(0, m.height-3) // header + status bar
	previewHeight = contentHeight / 2
	editorHeight = contentHeight - previewHeight
	return
}

func (m *AppModel) resize() {
	_, rightWidth, previewHeight, editorHeight := m.layout()
	m.sidebar.SetHeight(max(1, previewHeight+editorHeight-2))
	// Border (2) and horizontal padding (2)
	innerWidth := max(1, rightWidth-4)
	m.preview.SetSize(innerWidth, max(1, previewHeight-2))
	m.editor.SetSize(innerWidth, max(3, editorHeight-2))
	m.help.Width = m.width
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(appTitle+" - Keyboard Shortcuts", []shared.HelpSection{
			{Title: "Notes", Binds: m.keys.FullHelp()[0]},
			{Title: "Editing", Binds: m.keys.FullHelp()[1]},
			{Title: "General", Binds: m.keys.FullHelp()[2]},
		}, m.width, m.height)
	}

	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	sidebarWidth, rightWidth, previewHeight, editorHeight := m.layout()
	contentHeight := previewHeight + editorHeight

	pane := func(focused bool) lipgloss.Style {
		if focused {
			return theme.PaneFocused
		}
		return theme.Pane
	}

	sidebar := pane(m.focus == focusSidebar).
		Width(max(1, sidebarWidth-2)).
		Height(max(1, contentHeight-2)).
		Render(m.sidebar.View(max(1, sidebarWidth-4), max(1, contentHeight-2)))

	preview := theme.Pane.
		Width(max(1, rightWidth-2)).
		Height(max(1, previewHeight-2)).
		Render(m.preview.View())

	editor := pane(m.focus != focusSidebar).
		Width(max(1, rightWidth-2)).
		Height(max(1, editorHeight-2)).
		Render(m.editor.View())

	right := lipgloss.JoinVertical(lipgloss.Left, preview, editor)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)

	header := theme.Title.Render(appTitle) + theme.Muted.Render("  "+m.store.Dir())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusBar())
}

func (m AppModel) statusBar() string {
	bindings := m.keys.ShortHelp()
	if m.focus != focusSidebar {
		bindings = m.keys.editingHelp()
	}
	hints := m.help.ShortHelpView(bindings)

	if m.status != "" {
		style := theme.Ok
		if m.statusErr {
			style = theme.Error
		}
		hints = style.Render(m.status) + "  " + hints
	}

	return theme.StatusBar.Width(m.width).Render(hints)
}
