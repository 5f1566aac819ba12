package primcoll

import (
	"iter"

	"github.com/hupe1980/primcoll/search"
)

// ReadOnlySet exposes the read surface of a Set. It wraps the
// underlying set rather than copying it, so later writes through the
// original stay visible. Every mutating method panics with ErrReadOnly.
type ReadOnlySet[T search.Real] struct {
	s *Set[T]
}

// ReadOnly returns a read-only view of the set.
func (s *Set[T]) ReadOnly() *ReadOnlySet[T] {
	return &ReadOnlySet[T]{s: s}
}

// Len reports the number of elements.
func (r *ReadOnlySet[T]) Len() int { return r.s.Len() }

// IsEmpty reports whether the set has no elements.
func (r *ReadOnlySet[T]) IsEmpty() bool { return r.s.IsEmpty() }

// Contains reports whether v is in the set.
func (r *ReadOnlySet[T]) Contains(v T) bool { return r.s.Contains(v) }

// Min returns the smallest element, or false on an empty set.
func (r *ReadOnlySet[T]) Min() (T, bool) { return r.s.Min() }

// Max returns the largest element, or false on an empty set.
func (r *ReadOnlySet[T]) Max() (T, bool) { return r.s.Max() }

// IndexOf returns the ascending-order position of v, or the negative
// insertion-point sentinel of search.None when absent.
func (r *ReadOnlySet[T]) IndexOf(v T) int { return r.s.IndexOf(v) }

// ValueAt returns the element at position i in ascending order.
func (r *ReadOnlySet[T]) ValueAt(i int) T { return r.s.ValueAt(i) }

// NearestIndexTo returns the position resolved for v under bias.
func (r *ReadOnlySet[T]) NearestIndexTo(v T, bias search.Bias) int {
	return r.s.NearestIndexTo(v, bias)
}

// NearestValueTo returns the element resolved for v under bias.
func (r *ReadOnlySet[T]) NearestValueTo(v T, bias search.Bias) (T, bool) {
	return r.s.NearestValueTo(v, bias)
}

// ValuesBetween iterates the elements in [lo, hi], ascending.
func (r *ReadOnlySet[T]) ValuesBetween(lo, hi T) iter.Seq[T] {
	return r.s.ValuesBetween(lo, hi)
}

// Values iterates the elements in ascending order.
func (r *ReadOnlySet[T]) Values() iter.Seq[T] { return r.s.Values() }

// Backward iterates the elements in descending order.
func (r *ReadOnlySet[T]) Backward() iter.Seq[T] { return r.s.Backward() }

// All iterates (position, element) pairs in ascending order.
func (r *ReadOnlySet[T]) All() iter.Seq2[int, T] { return r.s.All() }

// ToSlice returns the elements as a fresh ascending slice.
func (r *ReadOnlySet[T]) ToSlice() []T { return r.s.ToSlice() }

// Equal reports whether the underlying set equals other.
func (r *ReadOnlySet[T]) Equal(other *Set[T]) bool { return r.s.Equal(other) }

// Clone returns an independent mutable copy of the underlying set.
func (r *ReadOnlySet[T]) Clone() *Set[T] { return r.s.Clone() }

// Add panics with ErrReadOnly.
func (r *ReadOnlySet[T]) Add(T) bool { panic(ErrReadOnly) }

// AddAll panics with ErrReadOnly.
func (r *ReadOnlySet[T]) AddAll(...T) bool { panic(ErrReadOnly) }

// Remove panics with ErrReadOnly.
func (r *ReadOnlySet[T]) Remove(T) bool { panic(ErrReadOnly) }

// RemoveAll panics with ErrReadOnly.
func (r *ReadOnlySet[T]) RemoveAll(...T) bool { panic(ErrReadOnly) }

// RemoveIf panics with ErrReadOnly.
func (r *ReadOnlySet[T]) RemoveIf(func(v T) bool) bool { panic(ErrReadOnly) }

// RemoveSet panics with ErrReadOnly.
func (r *ReadOnlySet[T]) RemoveSet(*Set[T]) bool { panic(ErrReadOnly) }

// RetainSet panics with ErrReadOnly.
func (r *ReadOnlySet[T]) RetainSet(*Set[T]) bool { panic(ErrReadOnly) }

// Clear panics with ErrReadOnly.
func (r *ReadOnlySet[T]) Clear() { panic(ErrReadOnly) }

// Grow panics with ErrReadOnly.
func (r *ReadOnlySet[T]) Grow(int) { panic(ErrReadOnly) }

// ReadOnlyMap exposes the read surface of a Map. It wraps the
// underlying map rather than copying it. Every mutating method panics
// with ErrReadOnly.
type ReadOnlyMap[K search.Real, V any] struct {
	m *Map[K, V]
}

// ReadOnly returns a read-only view of the map.
func (m *Map[K, V]) ReadOnly() *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{m: m}
}

// Len reports the number of entries.
func (r *ReadOnlyMap[K, V]) Len() int { return r.m.Len() }

// IsEmpty reports whether the map has no entries.
func (r *ReadOnlyMap[K, V]) IsEmpty() bool { return r.m.IsEmpty() }

// ContainsKey reports whether k is present.
func (r *ReadOnlyMap[K, V]) ContainsKey(k K) bool { return r.m.ContainsKey(k) }

// Get returns the value for k.
func (r *ReadOnlyMap[K, V]) Get(k K) (V, bool) { return r.m.Get(k) }

// GetOrDefault returns the value for k, or def when k is absent.
func (r *ReadOnlyMap[K, V]) GetOrDefault(k K, def V) V { return r.m.GetOrDefault(k, def) }

// KeyAt returns the key at position i in ascending order.
func (r *ReadOnlyMap[K, V]) KeyAt(i int) K { return r.m.KeyAt(i) }

// ValueAt returns the value at position i in key order.
func (r *ReadOnlyMap[K, V]) ValueAt(i int) V { return r.m.ValueAt(i) }

// NearestKeyTo returns the entry whose key resolves for k under bias.
func (r *ReadOnlyMap[K, V]) NearestKeyTo(k K, bias search.Bias) (K, V, bool) {
	return r.m.NearestKeyTo(k, bias)
}

// Keys iterates the keys in ascending order.
func (r *ReadOnlyMap[K, V]) Keys() iter.Seq[K] { return r.m.Keys() }

// Vals iterates the values in ascending key order.
func (r *ReadOnlyMap[K, V]) Vals() iter.Seq[V] { return r.m.Vals() }

// All iterates (key, value) pairs in ascending key order.
func (r *ReadOnlyMap[K, V]) All() iter.Seq2[K, V] { return r.m.All() }

// EqualFunc reports whether the underlying map equals other under eq.
func (r *ReadOnlyMap[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	return r.m.EqualFunc(other, eq)
}

// Clone returns an independent mutable copy of the underlying map.
func (r *ReadOnlyMap[K, V]) Clone() *Map[K, V] { return r.m.Clone() }

// Put panics with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Put(K, V) (V, bool) { panic(ErrReadOnly) }

// Delete panics with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Delete(K) bool { panic(ErrReadOnly) }

// RemoveIf panics with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) RemoveIf(func(k K, v V) bool) bool { panic(ErrReadOnly) }

// Clear panics with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Clear() { panic(ErrReadOnly) }
