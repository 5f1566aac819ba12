package primcoll

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/hupe1980/primcoll/search"
)

// Map is a sorted map from numeric keys to arbitrary values, backed by
// two parallel flat slices kept in lockstep. It shares the deferred
// sorting discipline of Set: an insert extending the current maximum
// key is O(1), other new keys append and mark the arrays pending, and
// the next order-dependent operation pays one paired sort pass.
//
// The zero value is an empty map ready for use. A Map is a plain
// mutable value: concurrent use requires external synchronization.
type Map[K search.Real, V any] struct {
	keys    []K
	vals    []V
	maxKey  K // largest key, maintained in every state; valid when keys is non-empty
	state   sortState
	version uint64
	stats   Stats
}

// NewMap returns an empty map.
func NewMap[K search.Real, V any](optFns ...Option) *Map[K, V] {
	o := applyOptions(optFns)

	m := &Map[K, V]{}
	if o.capacity > 0 {
		m.keys = make([]K, 0, o.capacity)
		m.vals = make([]V, 0, o.capacity)
	}

	return m
}

// Clone returns an independent copy of the map. Values are copied
// shallowly. The copy starts with fresh stats and iteration state.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		keys:   slices.Clone(m.keys),
		vals:   slices.Clone(m.vals),
		maxKey: m.maxKey,
		state:  m.state,
	}
}

// Put associates v with k, returning the previous value and whether one
// was replaced. New keys extending the current maximum append in O(1);
// other new keys append and defer the paired sort. Replacing a value is
// not a structural modification.
func (m *Map[K, V]) Put(k K, v V) (prev V, replaced bool) {
	if n := len(m.keys); n == 0 || k > m.maxKey {
		m.keys = append(m.keys, k)
		m.vals = append(m.vals, v)
		m.maxKey = k
		m.version++
		m.stats.FastAppends++

		return prev, false
	}

	m.ensureSorted()

	idx := search.Find(m.keys, k, search.None)
	if search.IsFound(idx) {
		prev = m.vals[idx]
		m.vals[idx] = v

		return prev, true
	}

	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	m.state = statePendingSort
	m.stats.SortsDeferred++
	m.version++

	return prev, false
}

// Get returns the value for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zero V

	if n := len(m.keys); n == 0 || k > m.maxKey {
		return zero, false
	}

	m.ensureSorted()

	idx := search.Find(m.keys, k, search.None)
	if !search.IsFound(idx) {
		return zero, false
	}

	return m.vals[idx], true
}

// GetOrDefault returns the value for k, or def when k is absent.
func (m *Map[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}

	return def
}

// ContainsKey reports whether k is present.
func (m *Map[K, V]) ContainsKey(k K) bool {
	if n := len(m.keys); n == 0 || k > m.maxKey {
		return false
	}

	m.ensureSorted()

	return search.IsFound(search.Find(m.keys, k, search.None))
}

// Delete removes k and reports whether the map changed. Both arrays
// shift with a single block copy.
func (m *Map[K, V]) Delete(k K) bool {
	if n := len(m.keys); n == 0 || k > m.maxKey {
		return false
	}

	m.ensureSorted()

	idx := search.Find(m.keys, k, search.None)
	if !search.IsFound(idx) {
		return false
	}

	m.keys = slices.Delete(m.keys, idx, idx+1)
	m.vals = slices.Delete(m.vals, idx, idx+1)
	m.syncMaxKey()
	m.version++

	return true
}

// RemoveIf deletes every entry matching pred and reports whether the
// map changed. One compaction pass moves each surviving run with a
// paired copy; pred is called exactly once per entry, in key order.
func (m *Map[K, V]) RemoveIf(pred func(k K, v V) bool) bool {
	if pred == nil {
		panic("primcoll: nil predicate")
	}

	m.ensureSorted()

	n := len(m.keys)
	w := 0
	runStart := -1
	removed := false

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if w != runStart {
			copy(m.keys[w:], m.keys[runStart:end])
			copy(m.vals[w:], m.vals[runStart:end])
		}
		w += end - runStart
		runStart = -1
	}

	for r := 0; r < n; r++ {
		if pred(m.keys[r], m.vals[r]) {
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

	clear(m.vals[w:n]) // release value references
	m.keys = m.keys[:w]
	m.vals = m.vals[:w]
	m.syncMaxKey()
	m.version++
	m.stats.Compactions++
	m.assertSortedKeys()

	return true
}

// NearestKeyTo returns the entry whose key resolves for k under the
// given bias, or false when none qualifies.
func (m *Map[K, V]) NearestKeyTo(k K, bias search.Bias) (K, V, bool) {
	m.ensureSorted()

	idx := search.Find(m.keys, k, bias)
	if !search.IsFound(idx) {
		var zk K
		var zv V

		return zk, zv, false
	}

	return m.keys[idx], m.vals[idx], true
}

// KeyAt returns the key at position i in ascending order. Panics when
// i is outside [0, Len).
func (m *Map[K, V]) KeyAt(i int) K {
	m.ensureSorted()

	if i < 0 || i >= len(m.keys) {
		panic(fmt.Sprintf("primcoll: index %d out of range with length %d", i, len(m.keys)))
	}

	return m.keys[i]
}

// ValueAt returns the value at position i in key order. Panics when i
// is outside [0, Len).
func (m *Map[K, V]) ValueAt(i int) V {
	m.ensureSorted()

	if i < 0 || i >= len(m.vals) {
		panic(fmt.Sprintf("primcoll: index %d out of range with length %d", i, len(m.vals)))
	}

	return m.vals[i]
}

// Len reports the number of entries. O(1) in every state.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

// Clear removes all entries, keeping the backing capacity.
func (m *Map[K, V]) Clear() {
	if len(m.keys) == 0 {
		return
	}

	clear(m.vals) // release value references
	m.keys = m.keys[:0]
	m.vals = m.vals[:0]

	var zero K
	m.maxKey = zero
	m.state = stateSorted
	m.version++
}

// Keys iterates the keys in ascending order. The sequence fails fast:
// structural mutation during iteration panics at the next step.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.ensureSorted()

		ver := m.version
		for i := 0; i < len(m.keys); i++ {
			m.checkVersion(ver)

			if !yield(m.keys[i]) {
				return
			}
		}
	}
}

// Vals iterates the values in ascending key order, failing fast like
// Keys.
func (m *Map[K, V]) Vals() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.ensureSorted()

		ver := m.version
		for i := 0; i < len(m.vals); i++ {
			m.checkVersion(ver)

			if !yield(m.vals[i]) {
				return
			}
		}
	}
}

// All iterates (key, value) pairs in ascending key order, failing fast
// like Keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.ensureSorted()

		ver := m.version
		for i := 0; i < len(m.keys); i++ {
			m.checkVersion(ver)

			if !yield(m.keys[i], m.vals[i]) {
				return
			}
		}
	}
}

// EqualFunc reports whether both maps hold the same keys with eq-equal
// values.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if eq == nil {
		panic("primcoll: nil comparison func")
	}

	if other == nil {
		return false
	}

	if m == other {
		return true
	}

	if len(m.keys) != len(other.keys) {
		return false
	}

	m.ensureSorted()
	other.ensureSorted()

	for i := range m.keys {
		if m.keys[i] != other.keys[i] || !eq(m.vals[i], other.vals[i]) {
			return false
		}
	}

	return true
}

// MapEqual reports whether both maps hold identical entries. For
// non-comparable value types use EqualFunc.
func MapEqual[K search.Real, V comparable](a, b *Map[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// Stats returns a snapshot of the map's operation counters.
func (m *Map[K, V]) Stats() Stats {
	return m.stats
}

// ensureSorted pays the owed sort pass, carrying the values through the
// identical swaps as the keys.
func (m *Map[K, V]) ensureSorted() {
	if m.state != statePendingSort {
		return
	}

	sort.Sort(&pairSlice[K, V]{keys: m.keys, vals: m.vals})
	m.state = stateSorted
	m.version++
	m.stats.SortsForced++
}

func (m *Map[K, V]) syncMaxKey() {
	if n := len(m.keys); n > 0 {
		m.maxKey = m.keys[n-1]
	} else {
		var zero K
		m.maxKey = zero
	}
}

func (m *Map[K, V]) checkVersion(ver uint64) {
	if m.version != ver {
		panic("primcoll: map modified during iteration")
	}
}

// pairSlice sorts a key slice while carrying the value slice through
// the identical swaps.
type pairSlice[K search.Real, V any] struct {
	keys []K
	vals []V
}

func (p *pairSlice[K, V]) Len() int { return len(p.keys) }

func (p *pairSlice[K, V]) Less(i, j int) bool { return p.keys[i] < p.keys[j] }

func (p *pairSlice[K, V]) Swap(i, j int) {
	p.keys[i], p.keys[j] = p.keys[j], p.keys[i]
	p.vals[i], p.vals[j] = p.vals[j], p.vals[i]
}
