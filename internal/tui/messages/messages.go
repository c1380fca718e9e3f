package messages

import tea "github.com/charmbracelet/bubbletea"

// OpenNoteMsg asks the shell to load a note into the preview and the editor
type OpenNoteMsg struct {
	Filename string
}

// DeleteNoteMsg asks the shell to remove a note. Confirmed is set once the
// user has answered the delete prompt (or when no prompt is configured).
type DeleteNoteMsg struct {
	Filename  string
	Confirmed bool
}

// SaveNoteMsg asks the shell to write the editor contents to disk
type SaveNoteMsg struct {
	Confirmed bool
}

func OpenNote(filename string) tea.Cmd {
	return func() tea.Msg {
		return OpenNoteMsg{Filename: filename}
	}
}

func DeleteNote(filename string) tea.Cmd {
	return func() tea.Msg {
		return DeleteNoteMsg{Filename: filename}
	}
}

func SaveNote() tea.Cmd {
	return func() tea.Msg {
		return SaveNoteMsg{}
	}
}
