package picturelab

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive height or width.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds is returned by checked accessors for coordinates
	// outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidParameter is returned when a transform parameter (block
	// size, window size, step count, scale, ...) is outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownFilter is returned when a filter name is not registered.
	ErrUnknownFilter = errors.New("unknown filter")
)
