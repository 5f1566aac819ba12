package primcoll

import (
	"github.com/hupe1980/primcoll/search"
)

// Intersect returns a new set holding the elements present in both s
// and other. The result is sorted and independent of its inputs.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	if other == nil {
		panic("primcoll: nil set")
	}

	s.ensureSorted()
	other.ensureSorted()

	out := &Set[T]{data: make([]T, 0, min(len(s.data), len(other.data)))}

	i, j := 0, 0
	for i < len(s.data) && j < len(other.data) {
		switch {
		case s.data[i] == other.data[j]:
			out.data = append(out.data, s.data[i])
			i++
			j++
		case s.data[i] < other.data[j]:
			i++
		default:
			j++
		}
	}

	out.syncMax()

	return out
}

// Union returns a new set holding the elements present in either s or
// other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	if other == nil {
		panic("primcoll: nil set")
	}

	s.ensureSorted()
	other.ensureSorted()

	out := &Set[T]{data: make([]T, 0, len(s.data)+len(other.data))}

	i, j := 0, 0
	for i < len(s.data) && j < len(other.data) {
		switch {
		case s.data[i] == other.data[j]:
			out.data = append(out.data, s.data[i])
			i++
			j++
		case s.data[i] < other.data[j]:
			out.data = append(out.data, s.data[i])
			i++
		default:
			out.data = append(out.data, other.data[j])
			j++
		}
	}

	out.data = append(out.data, s.data[i:]...)
	out.data = append(out.data, other.data[j:]...)
	out.syncMax()

	return out
}

// Xor returns a new set holding the elements present in exactly one of
// s and other.
func (s *Set[T]) Xor(other *Set[T]) *Set[T] {
	if other == nil {
		panic("primcoll: nil set")
	}

	s.ensureSorted()
	other.ensureSorted()

	out := &Set[T]{data: make([]T, 0, len(s.data)+len(other.data))}

	i, j := 0, 0
	for i < len(s.data) && j < len(other.data) {
		switch {
		case s.data[i] == other.data[j]:
			i++
			j++
		case s.data[i] < other.data[j]:
			out.data = append(out.data, s.data[i])
			i++
		default:
			out.data = append(out.data, other.data[j])
			j++
		}
	}

	out.data = append(out.data, s.data[i:]...)
	out.data = append(out.data, other.data[j:]...)
	out.syncMax()

	return out
}

// Inverse returns the complement of s within the closed range [lo, hi]:
// every integer in the range not present in s. An inverted range yields
// an empty set.
func Inverse[T search.Integer](s *Set[T], lo, hi T) *Set[T] {
	if s == nil {
		panic("primcoll: nil set")
	}

	out := NewSet[T]()
	if lo > hi {
		return out
	}

	s.ensureSorted()

	next := lo
	if i := search.Find(s.data, lo, search.Forward); i != search.NotFound {
		for ; i < len(s.data) && s.data[i] <= hi; i++ {
			v := s.data[i]
			for next < v {
				out.data = append(out.data, next)
				next++
			}

			if v == hi {
				// The range's top is a member; incrementing past it
				// could overflow, and nothing above it remains anyway.
				out.syncMax()
				return out
			}
			next = v + 1
		}
	}

	for {
		out.data = append(out.data, next)
		if next == hi {
			break
		}
		next++
	}

	out.syncMax()

	return out
}
