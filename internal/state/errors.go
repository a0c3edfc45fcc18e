package state

import "errors"

var (
	// ErrInvalid marks input a handler refuses to apply, such as an empty
	// title. Nothing is changed. The UI drops these silently.
	ErrInvalid = errors.New("invalid input")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
)
