package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"opennotes/internal/config"
	"opennotes/internal/notes"
	"opennotes/internal/tui/messages"
	"opennotes/internal/tui/shared"
)

func newTestApp(t *testing.T, cfg *config.Config) (AppModel, *notes.Store) {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{Extension: ".txt", Preview: config.PreviewPlain}
	}
	store := notes.NewStore(filepath.Join(t.TempDir(), "notes"), cfg.Extension)
	return NewAppModel(cfg, store), store
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

// run feeds the message produced by cmd back into the model
func run(t *testing.T, m AppModel, cmd tea.Cmd) (AppModel, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return update(m, cmd())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func setEditor(m *AppModel, title, body string) {
	m.editor.title.SetValue(title)
	m.editor.body.SetValue(body)
}

func TestStartup_CreatesStoreAndEmptyList(t *testing.T) {
	m, store := newTestApp(t, nil)

	if _, err := os.Stat(store.Dir()); err != nil {
		t.Fatalf("expected notes dir to exist: %v", err)
	}
	if len(m.sidebar.entries) != 0 {
		t.Errorf("expected empty sidebar, got %v", m.sidebar.entries)
	}
	if m.preview.title != placeholderTitle {
		t.Errorf("expected placeholder title, got %q", m.preview.title)
	}
	if m.focus != focusSidebar {
		t.Errorf("expected sidebar focus at startup")
	}
}

func TestStartup_ListsExistingNotes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "one.txt"), []byte("1"), 0644)
	os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("h"), 0644)

	m := NewAppModel(&config.Config{Preview: config.PreviewPlain}, notes.NewStore(dir, ".txt"))

	if len(m.sidebar.entries) != 1 || m.sidebar.entries[0] != "one.txt" {
		t.Errorf("expected [one.txt], got %v", m.sidebar.entries)
	}
}

func TestEndToEnd(t *testing.T) {
	m, store := newTestApp(t, nil)

	setEditor(&m, "Hello World", "abc")
	m, _ = update(m, messages.SaveNoteMsg{})

	if len(m.sidebar.entries) != 1 || m.sidebar.entries[0] != "Hello World.txt" {
		t.Fatalf("expected [Hello World.txt], got %v", m.sidebar.entries)
	}

	// Open via the sidebar key
	m, cmd := update(m, keyRunes("o"))
	m, _ = run(t, m, cmd)

	if m.preview.title != "Hello World" || m.preview.body != "abc" {
		t.Errorf("unexpected preview %q / %q", m.preview.title, m.preview.body)
	}
	if m.editor.Title() != "Hello World" || m.editor.Body() != "abc" {
		t.Errorf("unexpected editor %q / %q", m.editor.Title(), m.editor.Body())
	}

	// Delete via the sidebar key
	m, cmd = update(m, keyRunes("d"))
	m, _ = run(t, m, cmd)

	if len(m.sidebar.entries) != 0 {
		t.Errorf("expected empty sidebar, got %v", m.sidebar.entries)
	}
	if m.preview.title != deletedTitle || m.preview.body != "" {
		t.Errorf("expected reset preview, got %q / %q", m.preview.title, m.preview.body)
	}
	// Editor is left alone
	if m.editor.Title() != "Hello World" || m.editor.Body() != "abc" {
		t.Errorf("expected editor untouched, got %q / %q", m.editor.Title(), m.editor.Body())
	}
	if store.Exists("Hello World.txt") {
		t.Error("expected file removed")
	}
}

func TestOpenSave_KeepsBodyBytes(t *testing.T) {
	bodies := map[string]string{
		"tabs":    "col1\tcol2\n",
		"crlf":    "windows\r\nline\r\n",
		"control": "nul\x00byte",
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			m, store := newTestApp(t, nil)
			path := filepath.Join(store.Dir(), "Raw.txt")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}

			m, _ = update(m, messages.OpenNoteMsg{Filename: "Raw.txt"})
			m, _ = update(m, messages.SaveNoteMsg{})
			if m.statusErr {
				t.Fatalf("unexpected error status %q", m.status)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if string(got) != body {
				t.Errorf("expected %q unchanged, got %q", body, got)
			}
		})
	}
}

func TestOpenSave_EditedBodyWins(t *testing.T) {
	m, store := newTestApp(t, nil)
	os.WriteFile(filepath.Join(store.Dir(), "Raw.txt"), []byte("a\tb"), 0644)

	m, _ = update(m, messages.OpenNoteMsg{Filename: "Raw.txt"})
	m.editor.body.SetValue("rewritten")
	m, _ = update(m, messages.SaveNoteMsg{})

	got, _ := store.Read("Raw.txt")
	if got != "rewritten" {
		t.Errorf("expected edited body saved, got %q", got)
	}
}

func TestSave_ReflectsSanitizedTitle(t *testing.T) {
	m, store := newTestApp(t, nil)

	setEditor(&m, "My Note!", "body")
	m, _ = update(m, messages.SaveNoteMsg{})

	if m.editor.Title() != "My Note" {
		t.Errorf("expected sanitized title in editor, got %q", m.editor.Title())
	}
	got, err := store.Read("My Note.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "body" {
		t.Errorf("expected %q, got %q", "body", got)
	}
	if m.statusErr {
		t.Errorf("unexpected error status %q", m.status)
	}
}

func TestSave_EmptyTitle(t *testing.T) {
	m, store := newTestApp(t, nil)

	setEditor(&m, "", "orphan body")
	m, _ = update(m, messages.SaveNoteMsg{})

	names, _ := store.List()
	if len(names) != 0 {
		t.Errorf("expected nothing written, got %v", names)
	}
	if !m.statusErr || !strings.Contains(m.status, notes.ErrEmptyTitle.Error()) {
		t.Errorf("expected empty title error in status, got %q", m.status)
	}
}

func TestSave_AllInvalidTitleUsesFallback(t *testing.T) {
	m, _ := newTestApp(t, nil)

	setEditor(&m, "!!!", "x")
	m, _ = update(m, messages.SaveNoteMsg{})

	if m.editor.Title() != notes.FallbackTitle {
		t.Errorf("expected %q, got %q", notes.FallbackTitle, m.editor.Title())
	}
	if len(m.sidebar.entries) != 1 || m.sidebar.entries[0] != notes.FallbackTitle+".txt" {
		t.Errorf("unexpected sidebar %v", m.sidebar.entries)
	}
}

func TestSave_KeyDispatchesSave(t *testing.T) {
	m, _ := newTestApp(t, nil)
	setEditor(&m, "Via Key", "k")

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected save command")
	}
	if _, ok := cmd().(messages.SaveNoteMsg); !ok {
		t.Fatal("expected SaveNoteMsg")
	}
	m, _ = run(t, m, cmd)

	if len(m.sidebar.entries) != 1 || m.sidebar.entries[0] != "Via Key.txt" {
		t.Errorf("unexpected sidebar %v", m.sidebar.entries)
	}
}

func TestOpen_FailureKeepsState(t *testing.T) {
	m, store := newTestApp(t, nil)
	store.Write("Keep", "kept body")

	m, _ = update(m, messages.OpenNoteMsg{Filename: "Keep.txt"})
	m, _ = update(m, messages.OpenNoteMsg{Filename: "gone.txt"})

	if m.preview.title != "Keep" || m.preview.body != "kept body" {
		t.Errorf("expected previous preview kept, got %q / %q", m.preview.title, m.preview.body)
	}
	if m.editor.Title() != "Keep" {
		t.Errorf("expected editor kept, got %q", m.editor.Title())
	}
	if !m.statusErr {
		t.Error("expected error status")
	}
}

func TestDelete_MissingFile(t *testing.T) {
	m, _ := newTestApp(t, nil)

	m, _ = update(m, messages.DeleteNoteMsg{Filename: "ghost.txt"})

	if m.preview.title != deletedTitle {
		t.Errorf("expected preview reset, got %q", m.preview.title)
	}
	if !m.statusErr {
		t.Error("expected error status")
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	cfg := &config.Config{Extension: ".txt", Preview: config.PreviewPlain, ConfirmDelete: true}
	m, store := newTestApp(t, cfg)
	store.Write("Doomed", "x")
	m.refresh()

	m, _ = update(m, messages.DeleteNoteMsg{Filename: "Doomed.txt"})
	if m.confirm == nil {
		t.Fatal("expected confirmation prompt")
	}
	if !store.Exists("Doomed.txt") {
		t.Fatal("expected file kept until confirmed")
	}

	// Answer no
	m, cmd := update(m, keyRunes("n"))
	m, _ = run(t, m, cmd)
	if m.confirm != nil {
		t.Error("expected prompt closed")
	}
	if !store.Exists("Doomed.txt") {
		t.Fatal("expected file kept after cancel")
	}

	// Ask again and answer yes
	m, _ = update(m, messages.DeleteNoteMsg{Filename: "Doomed.txt"})
	m, cmd = update(m, keyRunes("y"))
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	if store.Exists("Doomed.txt") {
		t.Error("expected file deleted after confirmation")
	}
	if len(m.sidebar.entries) != 0 {
		t.Errorf("expected empty sidebar, got %v", m.sidebar.entries)
	}
}

func TestSave_OverwritePrompt(t *testing.T) {
	cfg := &config.Config{Extension: ".txt", Preview: config.PreviewPlain, ConfirmOverwrite: true}
	m, store := newTestApp(t, cfg)
	store.Write("Plan", "original")

	// A different title that sanitizes onto the existing file
	setEditor(&m, "Plan!", "replacement")
	m, _ = update(m, messages.SaveNoteMsg{})
	if m.confirm == nil {
		t.Fatal("expected overwrite prompt")
	}

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = run(t, m, cmd)
	if got, _ := store.Read("Plan.txt"); got != "original" {
		t.Errorf("expected original content kept, got %q", got)
	}

	// Saving the note that was opened does not prompt
	m, _ = update(m, messages.OpenNoteMsg{Filename: "Plan.txt"})
	m.editor.body.SetValue("edited")
	m, _ = update(m, messages.SaveNoteMsg{})
	if m.confirm != nil {
		t.Fatal("did not expect a prompt when saving the opened note")
	}
	if got, _ := store.Read("Plan.txt"); got != "edited" {
		t.Errorf("expected edited content, got %q", got)
	}
}

func TestConfirmationResult_WithoutPending(t *testing.T) {
	m, _ := newTestApp(t, nil)

	m, cmd := update(m, shared.ConfirmationResultMsg{Confirmed: true})
	if cmd != nil {
		t.Error("expected no command without a pending action")
	}
	if m.confirm != nil {
		t.Error("expected no prompt")
	}
}

func TestFocusCycle(t *testing.T) {
	m, _ := newTestApp(t, nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusTitle {
		t.Fatalf("expected title focus, got %d", m.focus)
	}

	// Keys go to the title field, not the sidebar
	m, _ = update(m, keyRunes("q"))
	if m.editor.Title() != "q" {
		t.Errorf("expected typed title, got %q", m.editor.Title())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusBody {
		t.Fatalf("expected body focus, got %d", m.focus)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusTitle {
		t.Fatalf("expected title focus after shift+tab, got %d", m.focus)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusSidebar {
		t.Fatalf("expected sidebar focus after esc, got %d", m.focus)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestApp(t, nil)

	_, cmd := update(m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestApp(t, nil)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(m, keyRunes("?"))
	if !m.showHelp {
		t.Fatal("expected help overlay")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help popup in view")
	}

	m, _ = update(m, keyRunes("x"))
	if m.showHelp {
		t.Error("expected any key to dismiss help")
	}
}

func TestSidebarNavigation(t *testing.T) {
	var s sidebarModel
	s.SetEntries([]string{"a.txt", "b.txt", "c.txt"})

	s.Down()
	s.Down()
	s.Down()
	if got, _ := s.Selected(); got != "c.txt" {
		t.Errorf("expected cursor clamped at c.txt, got %q", got)
	}

	s.SetEntries([]string{"a.txt"})
	if got, _ := s.Selected(); got != "a.txt" {
		t.Errorf("expected cursor clamped after shrink, got %q", got)
	}

	s.SetEntries(nil)
	if _, ok := s.Selected(); ok {
		t.Error("expected no selection for empty list")
	}
	s.Up()
	s.Down()
}

func TestSidebarScrollFollowsCursor(t *testing.T) {
	m, store := newTestApp(t, nil)
	for _, title := range []string{"n1", "n2", "n3", "n4", "n5", "n6"} {
		if _, err := store.Write(title, ""); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	m.refresh()

	// 9 rows: header, status bar and pane borders leave 4 sidebar rows
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 9})
	if m.sidebar.height != 4 {
		t.Fatalf("expected 4 visible rows, got %d", m.sidebar.height)
	}

	for i := 0; i < 5; i++ {
		m, _ = update(m, keyRunes("j"))
	}
	if m.sidebar.cursor != 5 || m.sidebar.offset != 2 {
		t.Fatalf("expected cursor 5 at offset 2, got %d at %d", m.sidebar.cursor, m.sidebar.offset)
	}

	view := m.sidebar.View(30, m.sidebar.height)
	if strings.Contains(view, "n1") || strings.Contains(view, "n2") {
		t.Errorf("expected top rows scrolled away:\n%s", view)
	}
	if !strings.Contains(view, "n6") {
		t.Errorf("expected selected row visible:\n%s", view)
	}

	// Offset survives further updates and follows back up
	for i := 0; i < 5; i++ {
		m, _ = update(m, keyRunes("k"))
	}
	if m.sidebar.offset != 0 {
		t.Errorf("expected offset back at 0, got %d", m.sidebar.offset)
	}
}

func TestView(t *testing.T) {
	m, store := newTestApp(t, nil)
	store.Write("Shopping", "milk")
	m.refresh()

	if m.View() != "Loading..." {
		t.Error("expected loading view before first resize")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()

	for _, want := range []string{appTitle, placeholderTitle, "Shopping", "Note title...", "Save Note"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if strings.Contains(view, "Shopping.txt") {
		t.Error("expected sidebar to show titles without extension")
	}
}
