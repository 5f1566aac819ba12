package queue

import (
	"fmt"
	"sync/atomic"
)

// Stats tracks queue activity counters. All counters are cumulative
// for the lifetime of the queue.
//
// Note on semantics:
//   - EntriesAllocated: entries created by Push and by copying helpers
//     (Clone, ReverseInPlace, RemoveFirstMatch). Transfers relink
//     entries and leave this counter untouched.
//   - CASRetries: failed tail swaps that were retried under contention
//   - Drains: whole-chain detachments (Drain, DrainTo, Clear)
//   - Grafts: detached chains relinked onto this queue
//   - Removes: successful RemoveFirstMatch eliminations
type Stats struct {
	EntriesAllocated uint64
	CASRetries       uint64
	Drains           uint64
	Grafts           uint64
	Removes          uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("entriesAllocated=%d casRetries=%d drains=%d grafts=%d removes=%d",
		s.EntriesAllocated, s.CASRetries, s.Drains, s.Grafts, s.Removes)
}

type atomicStats struct {
	EntriesAllocated atomic.Uint64
	CASRetries       atomic.Uint64
	Drains           atomic.Uint64
	Grafts           atomic.Uint64
	Removes          atomic.Uint64
}

func (s *atomicStats) snapshot() Stats {
	return Stats{
		EntriesAllocated: s.EntriesAllocated.Load(),
		CASRetries:       s.CASRetries.Load(),
		Drains:           s.Drains.Load(),
		Grafts:           s.Grafts.Load(),
		Removes:          s.Removes.Load(),
	}
}
