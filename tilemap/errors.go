package tilemap

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned by Load when the map file does not exist.
	ErrNotFound = errors.New("tilemap: map file not found")
	// ErrTruncated is returned when the data ends before the header or the
	// tile payload it declares.
	ErrTruncated = errors.New("tilemap: truncated map data")
	// ErrInvalidHeader is returned for negative or oversized dimensions.
	ErrInvalidHeader = errors.New("tilemap: invalid map header")
)
