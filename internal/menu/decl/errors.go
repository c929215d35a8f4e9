package decl

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownID         = errors.New("unknown id")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrUnknownFlag       = errors.New("unknown flag")
	ErrUnknownKey        = errors.New("unknown key")
	ErrMissingTitle      = errors.New("missing title")
	ErrEditWithoutAction = errors.New("edit parameters without an action")
	ErrChildConflict     = errors.New("item already declares a back entry")
)

// Error locates a declaration problem. Entry is the offending row's id, or
// its position when it has none.
type Error struct {
	Entry string
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("menu declaration %s: %s: %v", e.Entry, e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
