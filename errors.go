package scheduler

import "errors"

var (
	// ErrInvalidRange is returned when a time range would end before it starts.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrRangeNotFound signals broken free time bookkeeping:
	// a range was subtracted that no stored range contains.
	ErrRangeNotFound = errors.New("time range not found in set")

	ErrRangeOverlap  = errors.New("time range overlaps stored range")
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)
