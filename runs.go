package primcoll

import (
	"iter"

	"github.com/hupe1980/primcoll/search"
)

// ConsecutiveRuns iterates maximal runs of consecutive integer values
// as half-open position ranges [start, end) over the ascending order.
// For the elements [1 2 3 7 8 12] it yields (0, 3), (3, 5), (5, 6).
// Useful for translating membership into minimal block operations. The
// sequence fails fast on structural mutation.
func ConsecutiveRuns[T search.Integer](s *Set[T]) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		s.ensureSorted()

		ver := s.version
		n := len(s.data)

		for start := 0; start < n; {
			s.checkVersion(ver)

			end := start + 1
			for end < n && s.data[end] == s.data[end-1]+1 {
				end++
			}

			if !yield(start, end) {
				return
			}

			start = end
		}
	}
}

// ConsecutiveRunsReversed iterates the same ranges as ConsecutiveRuns,
// highest run first. Range bounds keep their ascending-order meaning.
func ConsecutiveRunsReversed[T search.Integer](s *Set[T]) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		s.ensureSorted()

		ver := s.version

		for end := len(s.data); end > 0; {
			s.checkVersion(ver)

			start := end - 1
			for start > 0 && s.data[start] == s.data[start-1]+1 {
				start--
			}

			if !yield(start, end) {
				return
			}

			end = start
		}
	}
}
