package primcoll

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/primcoll/search"
)

// sortState tracks whether the backing array currently holds its
// elements in ascending order.
type sortState uint8

const (
	stateSorted sortState = iota
	statePendingSort
)

// Set is a sorted set of numeric values backed by a single flat slice.
//
// Ordering maintenance is deferred: an append that extends the current
// maximum is O(1) and leaves the sort state untouched; any other append
// marks the array as pending, and the next order-dependent operation
// (search, removal, iteration) re-establishes order with one sort pass.
// The backing array never holds duplicates, not even while pending, so
// Len is exact in every state.
//
// The zero value is an empty set ready for use. A Set is a plain
// mutable value: concurrent use requires external synchronization.
type Set[T search.Real] struct {
	data    []T
	max     T // largest element, maintained in every state; valid when data is non-empty
	state   sortState
	version uint64
	stats   Stats
}

// NewSet returns an empty set.
func NewSet[T search.Real](optFns ...Option) *Set[T] {
	o := applyOptions(optFns)

	s := &Set[T]{}
	if o.capacity > 0 {
		s.data = make([]T, 0, o.capacity)
	}

	return s
}

// SetOf returns a set holding the given values. Duplicates collapse.
func SetOf[T search.Real](vals ...T) *Set[T] {
	s := NewSet[T](WithCapacity(len(vals)))
	s.AddAll(vals...)

	return s
}

// Clone returns an independent copy of the set. The copy starts with
// fresh stats and iteration state.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		data:  slices.Clone(s.data),
		max:   s.max,
		state: s.state,
	}
}

// Add inserts v and reports whether the set changed. Values extending
// the current maximum append in O(1) without touching the sort state;
// anything else normalizes first, binary-searches, and on a miss
// appends and defers the sort.
func (s *Set[T]) Add(v T) bool {
	if n := len(s.data); n == 0 || v > s.max {
		s.data = append(s.data, v)
		s.max = v
		s.version++
		s.stats.FastAppends++

		return true
	}

	s.ensureSorted()

	if search.IsFound(search.Find(s.data, v, search.None)) {
		return false
	}

	// v sorts strictly below the maximum here, so the append owes a
	// sort pass.
	s.data = append(s.data, v)
	s.state = statePendingSort
	s.stats.SortsDeferred++
	s.version++

	return true
}

// AddAll inserts the given values and reports whether the set changed.
// The batch is sorted once, batch-internal duplicates collapse, and one
// merge walk over the existing elements identifies runs of genuinely
// new values, each appended with a single copy. Never shifts per
// element.
func (s *Set[T]) AddAll(vals ...T) bool {
	if len(vals) == 0 {
		return false
	}

	s.ensureSorted()

	batch := slices.Clone(vals)
	slices.Sort(batch)
	batch = slices.Compact(batch)

	oldLen := len(s.data)
	i := 0
	changed := false

	for j := 0; j < len(batch); {
		v := batch[j]
		for i < oldLen && s.data[i] < v {
			i++
		}

		if i < oldLen && s.data[i] == v {
			j++
			continue
		}

		// batch[j:end] is a run of new values all fitting below the
		// next existing element; append it with one copy.
		end := j + 1
		for end < len(batch) && (i >= oldLen || batch[end] < s.data[i]) {
			end++
		}

		s.data = append(s.data, batch[j:end]...)
		changed = true
		j = end
	}

	if !changed {
		return false
	}

	n := len(s.data)
	if oldLen == 0 || s.data[oldLen] > s.data[oldLen-1] {
		// The appended runs are themselves ascending, so the array
		// stayed sorted end to end.
		s.syncMax()
	} else {
		s.state = statePendingSort
		s.stats.SortsDeferred++

		if s.data[n-1] > s.max {
			s.max = s.data[n-1]
		}
	}
	s.version++

	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	if n := len(s.data); n == 0 || v > s.max {
		return false
	}

	s.ensureSorted()

	return search.IsFound(search.Find(s.data, v, search.None))
}

// Remove deletes v and reports whether the set changed. The tail moves
// left with a single block copy.
func (s *Set[T]) Remove(v T) bool {
	if n := len(s.data); n == 0 || v > s.max {
		return false
	}

	s.ensureSorted()

	idx := search.Find(s.data, v, search.None)
	if !search.IsFound(idx) {
		return false
	}

	s.data = slices.Delete(s.data, idx, idx+1)
	s.syncMax()
	s.version++

	return true
}

// RemoveIf deletes every element matching pred and reports whether the
// set changed. One compaction pass moves each surviving run with a
// single copy, so total data movement is O(n) regardless of how many
// elements match. pred is called exactly once per element, in ascending
// order.
func (s *Set[T]) RemoveIf(pred func(v T) bool) bool {
	if pred == nil {
		panic("primcoll: nil predicate")
	}

	s.ensureSorted()

	n := len(s.data)
	w := 0
	runStart := -1
	removed := false

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if w != runStart {
			copy(s.data[w:], s.data[runStart:end])
		}
		w += end - runStart
		runStart = -1
	}

	for r := 0; r < n; r++ {
		if pred(s.data[r]) {
			flush(r)
			removed = true

			continue
		}

		if runStart < 0 {
			runStart = r
		}
	}
	flush(n)

	if !removed {
		return false
	}

	s.data = s.data[:w]
	s.syncMax()
	s.version++
	s.stats.Compactions++
	s.assertSorted()

	return true
}

// RemoveAll deletes the given values and reports whether the set
// changed. Membership is resolved into a position mask first, then one
// compaction pass applies it.
func (s *Set[T]) RemoveAll(vals ...T) bool {
	if len(vals) == 0 || len(s.data) == 0 {
		return false
	}

	s.ensureSorted()

	batch := slices.Clone(vals)
	slices.Sort(batch)
	batch = slices.Compact(batch)

	mask := markMembers(s.data, batch)
	if !mask.Any() {
		return false
	}

	return s.compactByMask(mask, false)
}

// RemoveSet deletes every element also present in other and reports
// whether the set changed.
func (s *Set[T]) RemoveSet(other *Set[T]) bool {
	if other == nil {
		panic("primcoll: nil set")
	}

	if len(s.data) == 0 || len(other.data) == 0 {
		return false
	}

	s.ensureSorted()
	other.ensureSorted()

	mask := markMembers(s.data, other.data)
	if !mask.Any() {
		return false
	}

	return s.compactByMask(mask, false)
}

// RetainSet deletes every element not present in other and reports
// whether the set changed.
func (s *Set[T]) RetainSet(other *Set[T]) bool {
	if other == nil {
		panic("primcoll: nil set")
	}

	if len(s.data) == 0 {
		return false
	}

	if len(other.data) == 0 {
		s.Clear()
		return true
	}

	s.ensureSorted()
	other.ensureSorted()

	return s.compactByMask(markMembers(s.data, other.data), true)
}

// NearestIndexTo returns the position resolved for v under the given
// bias, or a negative sentinel on a miss (see package search).
func (s *Set[T]) NearestIndexTo(v T, bias search.Bias) int {
	s.ensureSorted()

	return search.Find(s.data, v, bias)
}

// NearestValueTo returns the element resolved for v under the given
// bias, or false when no element qualifies.
func (s *Set[T]) NearestValueTo(v T, bias search.Bias) (T, bool) {
	idx := s.NearestIndexTo(v, bias)
	if !search.IsFound(idx) {
		var zero T
		return zero, false
	}

	return s.data[idx], true
}

// ValuesBetween iterates the elements in [lo, hi], ascending. An
// inverted range yields nothing.
func (s *Set[T]) ValuesBetween(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if lo > hi || len(s.data) == 0 {
			return
		}

		s.ensureSorted()

		start := search.Find(s.data, lo, search.Forward)
		if start == search.NotFound {
			return
		}

		ver := s.version
		for i := start; i < len(s.data) && s.data[i] <= hi; i++ {
			s.checkVersion(ver)

			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// IndexOf returns the ascending-order position of v, or the negative
// insertion-point sentinel of search.None when absent.
func (s *Set[T]) IndexOf(v T) int {
	s.ensureSorted()

	return search.Find(s.data, v, search.None)
}

// ValueAt returns the element at position i in ascending order. Panics
// when i is outside [0, Len).
func (s *Set[T]) ValueAt(i int) T {
	s.ensureSorted()

	if i < 0 || i >= len(s.data) {
		panic(fmt.Sprintf("primcoll: index %d out of range with length %d", i, len(s.data)))
	}

	return s.data[i]
}

// Min returns the smallest element, or false on an empty set.
func (s *Set[T]) Min() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}

	s.ensureSorted()

	return s.data[0], true
}

// Max returns the largest element, or false on an empty set. O(1) in
// every state: the maximum is tracked across appends.
func (s *Set[T]) Max() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}

	return s.max, true
}

// Len reports the number of elements. O(1) in every state: the backing
// array never holds duplicates, even while a sort is pending.
func (s *Set[T]) Len() int {
	return len(s.data)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Clear removes all elements, keeping the backing capacity.
func (s *Set[T]) Clear() {
	if len(s.data) == 0 {
		return
	}

	s.data = s.data[:0]

	var zero T
	s.max = zero
	s.state = stateSorted
	s.version++
}

// ToSlice returns the elements as a fresh ascending slice.
func (s *Set[T]) ToSlice() []T {
	s.ensureSorted()

	return slices.Clone(s.data)
}

// Values iterates the elements in ascending order. The sequence fails
// fast: structural mutation during iteration panics at the next step.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.ensureSorted()

		ver := s.version
		for i := 0; i < len(s.data); i++ {
			s.checkVersion(ver)

			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// Backward iterates the elements in descending order, failing fast like
// Values.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.ensureSorted()

		ver := s.version
		for i := len(s.data) - 1; i >= 0; i-- {
			s.checkVersion(ver)

			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// All iterates (position, element) pairs in ascending order, failing
// fast like Values.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s.ensureSorted()

		ver := s.version
		for i := 0; i < len(s.data); i++ {
			s.checkVersion(ver)

			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if other == nil {
		return false
	}

	if s == other {
		return true
	}

	if len(s.data) != len(other.data) {
		return false
	}

	s.ensureSorted()
	other.ensureSorted()

	return slices.Equal(s.data, other.data)
}

// Grow reserves capacity for n more elements, like slices.Grow. A
// negative n panics.
func (s *Set[T]) Grow(n int) {
	if n < 0 {
		panic(fmt.Sprintf("primcoll: negative count %d", n))
	}

	s.data = slices.Grow(s.data, n)
	s.stats.Grows++
}

// Stats returns a snapshot of the set's operation counters.
func (s *Set[T]) Stats() Stats {
	return s.stats
}

// ensureSorted pays the owed sort pass. The array never holds
// duplicates even while pending, so normalization is a sort alone.
func (s *Set[T]) ensureSorted() {
	if s.state != statePendingSort {
		return
	}

	slices.Sort(s.data)
	s.state = stateSorted
	s.version++
	s.stats.SortsForced++
}

func (s *Set[T]) syncMax() {
	if n := len(s.data); n > 0 {
		s.max = s.data[n-1]
	} else {
		var zero T
		s.max = zero
	}
}

func (s *Set[T]) checkVersion(ver uint64) {
	if s.version != ver {
		panic("primcoll: set modified during iteration")
	}
}

// compactByMask drops (keepMarked false) or keeps (keepMarked true) the
// marked positions in one pass, moving each surviving run with a single
// copy. Requires the sorted state.
func (s *Set[T]) compactByMask(mask *bitset.BitSet, keepMarked bool) bool {
	n := len(s.data)
	w := 0
	runStart := -1

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if w != runStart {
			copy(s.data[w:], s.data[runStart:end])
		}
		w += end - runStart
		runStart = -1
	}

	for r := 0; r < n; r++ {
		if mask.Test(uint(r)) != keepMarked {
			flush(r)
			continue
		}

		if runStart < 0 {
			runStart = r
		}
	}
	flush(n)

	if w == n {
		return false
	}

	s.data = s.data[:w]
	s.syncMax()
	s.version++
	s.stats.Compactions++
	s.assertSorted()

	return true
}

// markMembers returns a mask over data's positions whose values are
// also present in members. Both slices must be ascending and
// duplicate-free.
func markMembers[T search.Real](data, members []T) *bitset.BitSet {
	mask := bitset.New(uint(len(data)))

	i, j := 0, 0
	for i < len(data) && j < len(members) {
		switch {
		case data[i] == members[j]:
			mask.Set(uint(i))
			i++
			j++
		case data[i] < members[j]:
			i++
		default:
			j++
		}
	}

	return mask
}
