package notation

import "errors"

// Sentinel errors for the notation package.
var (
	// Move errors
	ErrInvalidMove     = errors.New("notation: invalid move")
	ErrLayerOutOfRange = errors.New("notation: layer out of range")

	// Structure errors
	ErrUnexpectedToken = errors.New("notation: unexpected token")
	ErrUnclosedGroup   = errors.New("notation: unclosed group")
)
