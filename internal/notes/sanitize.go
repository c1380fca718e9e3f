package notes

import "strings"

// FallbackTitle is used when a title has no allowed characters left
const FallbackTitle = "untitled"

// Sanitize reduces a user-entered title to a filename-safe base name.
// Only ASCII letters, digits, space, underscore and hyphen survive; every
// other character is dropped. "My Note!" -> "My Note", "!!!" -> "untitled"
func Sanitize(title string) string {
	var result strings.Builder
	result.Grow(len(title))
	for i := 0; i < len(title); i++ {
		if c := title[i]; isAllowed(c) {
			result.WriteByte(c)
		}
	}

	if result.Len() == 0 {
		return FallbackTitle
	}
	return result.String()
}

func isAllowed(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ' ', c == '_', c == '-':
		return true
	}
	return false
}
