package notes

import "strings"

// Note is a single plain-text note on disk
type Note struct {
	Filename string // Name inside the notes directory, extension included
	Title    string // Filename minus its last extension
	Body     string
}

// DisplayTitle strips the last extension from a filename.
// "My Note.txt" -> "My Note", "a.b.txt" -> "a.b"
func DisplayTitle(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}
