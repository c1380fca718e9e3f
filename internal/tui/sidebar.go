package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"opennotes/internal/notes"
	"opennotes/internal/tui/shared"
	"opennotes/internal/tui/theme"
)

var (
	rowStyle         = lipgloss.NewStyle().Foreground(theme.Text)
	selectedRowStyle = theme.SelectedBg.Bold(true)
	rowActionStyle   = theme.Muted
)

// sidebarModel is the note list. Rows are rebuilt from scratch on every
// SetEntries; only the cursor survives, clamped to the new length.
type sidebarModel struct {
	entries []string // filenames as listed by the store
	cursor  int
	offset  int // first visible row
	height  int // visible rows
}

func (s *sidebarModel) SetEntries(entries []string) {
	s.entries = entries
	if s.cursor >= len(s.entries) {
		s.cursor = max(0, len(s.entries)-1)
	}
	s.follow()
}

func (s *sidebarModel) SetHeight(height int) {
	s.height = height
	s.follow()
}

// follow keeps the cursor inside the visible window
func (s *sidebarModel) follow() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.height > 0 && s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	// Don't leave blank rows at the bottom after the list shrinks
	if s.height > 0 {
		s.offset = min(s.offset, max(0, len(s.entries)-s.height))
	}
}

// Selected returns the filename under the cursor
func (s sidebarModel) Selected() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[s.cursor], true
}

func (s *sidebarModel) Up() {
	if s.cursor > 0 {
		s.cursor--
	}
	s.follow()
}

func (s *sidebarModel) Down() {
	if s.cursor < len(s.entries)-1 {
		s.cursor++
	}
	s.follow()
}

func (s sidebarModel) View(width, height int) string {
	if height <= 0 {
		return ""
	}
	if len(s.entries) == 0 {
		return shared.CenterContent(theme.Muted.Render("No notes yet."), height)
	}

	actions := " [o]pen [d]elete"
	var lines []string
	for i := s.offset; i < len(s.entries) && i < s.offset+height; i++ {
		label := notes.DisplayTitle(s.entries[i])
		if i == s.cursor {
			room := width - 2 - lipgloss.Width(actions)
			row := "► " + truncate(label, room)
			if room > 0 {
				row += rowActionStyle.Render(actions)
			}
			lines = append(lines, selectedRowStyle.Width(width).Render(row))
			continue
		}
		lines = append(lines, rowStyle.Render("  "+truncate(label, width-2)))
	}

	return shared.FitLines(strings.Join(lines, "\n"), height)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
