package queue

import "errors"

var (
	// ErrEmpty is returned by the strict accessors Remove and Element
	// when the queue holds no entries.
	ErrEmpty = errors.New("queue is empty")
)
