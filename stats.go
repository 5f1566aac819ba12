package primcoll

import "fmt"

// Stats is a point-in-time snapshot of a collection's operation
// counters. Counters are plain values, not atomics: sets and maps are
// single-owner structures and their stats follow the same contract.
type Stats struct {
	// FastAppends counts adds that extended the current maximum and
	// skipped the sort machinery entirely.
	FastAppends uint64
	// SortsDeferred counts mutations that left the array pending a sort.
	SortsDeferred uint64
	// SortsForced counts the sort passes paid by order-dependent reads.
	SortsForced uint64
	// Compactions counts bulk-removal passes over the backing array.
	Compactions uint64
	// Grows counts explicit capacity reservations via Grow.
	Grows uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("fastAppends=%d sortsDeferred=%d sortsForced=%d compactions=%d grows=%d",
		s.FastAppends, s.SortsDeferred, s.SortsForced, s.Compactions, s.Grows)
}
