package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxNameLen is the longest filename accepted, in bytes (NAME_MAX on most filesystems)
const MaxNameLen = 255

// DefaultExt is the extension given to every note the store writes
const DefaultExt = ".txt"

// Store is the only code that touches the notes directory.
// Every call goes straight to disk; nothing is cached between calls.
type Store struct {
	dir string
	ext string
}

// NewStore creates a store over dir. An empty ext falls back to DefaultExt.
func NewStore(dir, ext string) *Store {
	if ext == "" {
		ext = DefaultExt
	}
	return &Store{dir: dir, ext: ext}
}

// Dir returns the notes directory
func (s *Store) Dir() string {
	return s.dir
}

// Ext returns the extension used for new notes
func (s *Store) Ext() string {
	return s.ext
}

// Ensure creates the notes directory if it is missing
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirCreate, s.dir, err)
	}
	return nil
}

// List returns every entry in the notes directory except dotfiles.
// Callers must not depend on the order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrList, s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Read returns the full content of a note, filename as returned by List
func (s *Store) Read(filename string) (string, error) {
	path, err := s.Path(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRead, filename, err)
	}
	return string(data), nil
}

// Get reads a note along with its display title
func (s *Store) Get(filename string) (Note, error) {
	body, err := s.Read(filename)
	if err != nil {
		return Note{}, err
	}
	return Note{Filename: filename, Title: DisplayTitle(filename), Body: body}, nil
}

// Write sanitizes title and creates or truncates <dir>/<title><ext> with content.
// It returns the filename that was written.
func (s *Store) Write(title, content string) (string, error) {
	filename := s.Filename(title)
	path, err := s.Path(filename)
	if err != nil {
		return filename, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return filename, fmt.Errorf("%w: %s: %w", ErrWrite, filename, err)
	}
	return filename, nil
}

// Delete removes a note, filename as returned by List
func (s *Store) Delete(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, filename, err)
	}
	return nil
}

// Exists reports whether filename is present in the notes directory
func (s *Store) Exists(filename string) bool {
	path, err := s.Path(filename)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Filename returns the on-disk name a note with this title is saved under
func (s *Store) Filename(title string) string {
	return Sanitize(title) + s.ext
}

// Path joins filename onto the notes directory. Names that are empty, too
// long, or that would leave the directory are rejected.
func (s *Store) Path(filename string) (string, error) {
	switch {
	case filename == "", filename == ".", filename == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidName, filename)
	case strings.ContainsRune(filename, '/'), filepath.Base(filename) != filename:
		return "", fmt.Errorf("%w: %q", ErrInvalidName, filename)
	case len(filename) > MaxNameLen:
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrNameTooLong, len(filename), MaxNameLen)
	}
	return filepath.Join(s.dir, filename), nil
}
