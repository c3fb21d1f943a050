package gridmap

import "errors"

var (
	// ErrInvalidResolution indicates a resolution that is missing, zero, negative, NaN or ±Inf.
	ErrInvalidResolution = errors.New("gridmap: resolution must be a finite positive number")
	// ErrShortData indicates fewer cell values than Width×Height.
	ErrShortData = errors.New("gridmap: data holds fewer cells than width*height")
)
