package layout

import "errors"

// Configuration errors abort the operation they were passed to; the layout
// state is never partially updated. Callers match them with errors.Is.
var (
	// ErrInvalidItem reports a nil or absent item reference.
	ErrInvalidItem = errors.New("invalid item")

	// ErrOutOfRange reports a row or column index outside the current grid
	// dimensions, or an item index outside the registered range.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidDirection reports a linear layout direction that is neither
	// Horizontal nor Vertical.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidPolicy reports an insert policy outside the known set.
	ErrInvalidPolicy = errors.New("invalid insert policy")
)
