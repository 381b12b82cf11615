package raster

import "errors"

// Common errors. Operational failures wrap one of these sentinels, so
// callers can classify them with errors.Is.
var (
	// ErrUnsupportedOperation reports a read on a non-readable store, a
	// write on a non-writable one, a request for a data order outside the
	// store's supported set, or coordinate addressing on an unmapped raster.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIndexOutOfRange reports a row, column, band, offset or count
	// argument outside its valid domain.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument reports malformed construction input, such as an
	// empty required identifier or a corner mapping list that is not of
	// length four.
	ErrInvalidArgument = errors.New("invalid argument")
)
