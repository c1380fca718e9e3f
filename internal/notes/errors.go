package notes

import "errors"

var (
	ErrDirCreate   = errors.New("cannot create notes directory")
	ErrList        = errors.New("cannot list notes")
	ErrRead        = errors.New("cannot read note")
	ErrWrite       = errors.New("cannot write note")
	ErrDelete      = errors.New("cannot delete note")
	ErrEmptyTitle  = errors.New("note title cannot be empty")
	ErrNameTooLong = errors.New("note filename too long")
	ErrInvalidName = errors.New("invalid note filename")
)
