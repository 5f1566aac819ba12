package queue

import "iter"

// Snapshot is a stable view of a queue's contents taken in a single
// walk of the chain. It never touches the live queue again, so it can
// be split and consumed from multiple goroutines while the queue
// keeps mutating.
type Snapshot[T any] struct {
	items []T
}

// Snapshot deep-copies the live chain into a stable view,
// materialized oldest first. Values pushed concurrently with the walk
// may or may not be included.
func (q *Atomic[T]) Snapshot() *Snapshot[T] {
	return &Snapshot[T]{items: q.Items()}
}

// Len returns the number of values in the snapshot.
func (s *Snapshot[T]) Len() int {
	return len(s.items)
}

// Split divides the snapshot in half for parallel consumption. The
// receiver keeps the older half and the returned snapshot holds the
// newer half. A snapshot of fewer than two values is not split and
// Split returns nil.
func (s *Snapshot[T]) Split() *Snapshot[T] {
	if len(s.items) < 2 {
		return nil
	}

	mid := len(s.items) / 2
	newer := &Snapshot[T]{items: s.items[mid:]}
	s.items = s.items[:mid]

	return newer
}

// All returns an iterator over the snapshot's values, oldest first.
func (s *Snapshot[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
