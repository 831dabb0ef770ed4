package storage

import "errors"

var (
	// ErrDataUnavailable means a city's dataset is missing, unreadable or
	// malformed. It aborts the current selection.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrMalformedRecord means a row could not be parsed. Loading fails fast
	// on the first one.
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnknownCity     = errors.New("unknown city")
	ErrMissingColumn   = errors.New("missing column")
)
