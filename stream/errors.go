package stream

import "errors"

var (
	// ErrBadRecord indicates a record line that could not be decoded.
	ErrBadRecord = errors.New("stream: bad record")

	// ErrEmptyFile indicates an opened record file with no content.
	ErrEmptyFile = errors.New("stream: empty file")
)
