package props

import "errors"

// Engine error taxonomy. All are raised at the point of detection and halt
// processing of the current record; callers test with errors.Is.
var (
	// ErrUnsupportedKeyword reports a keyword name missing from the registry.
	ErrUnsupportedKeyword = errors.New("unsupported grid property keyword")

	// ErrTypeMismatch reports a keyword accessed through the wrong numeric
	// kind, or a non-integer property used as a region driver.
	ErrTypeMismatch = errors.New("grid property type mismatch")

	// ErrInvalidBox reports BOX index ranges outside the grid bounds.
	ErrInvalidBox = errors.New("box outside grid bounds")
)
