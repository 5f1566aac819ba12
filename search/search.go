// Package search implements biased binary search over sorted numeric data.
//
// A search resolves against a sorted slice (or an index-mapped key
// accessor) under a Bias policy that decides which neighbor to report
// when the exact target is absent. All searches run in O(log n)
// comparisons and tolerate runs of duplicate values: Forward resolves
// to the lowest index of a run, Backward to the highest.
//
// Float keys must not contain NaN; ordering semantics are undefined
// otherwise, as with any sorted structure.
package search

import "fmt"

// Bias controls which neighbor a search resolves to when the exact
// target value is absent from the data.
type Bias int

const (
	// None matches exactly. A miss reports the insertion point via the
	// negative sentinel -(insertionPoint) - 1.
	None Bias = iota
	// Forward resolves to the smallest value >= target.
	Forward
	// Backward resolves to the largest value <= target.
	Backward
	// Nearest resolves to whichever of Forward/Backward is numerically
	// closer to the target, ties broken in favor of Forward.
	Nearest
)

// String implements fmt.Stringer.
func (b Bias) String() string {
	switch b {
	case None:
		return "None"
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Nearest:
		return "Nearest"
	default:
		return fmt.Sprintf("Bias(%d)", int(b))
	}
}

// NotFound is returned by Forward/Backward/Nearest searches when no
// element qualifies.
const NotFound = -1

// IsFound reports whether idx refers to an element (any non-negative
// result is a hit, for every bias).
func IsFound(idx int) bool {
	return idx >= 0
}

// InsertionPoint decodes the sentinel returned by a None-biased miss
// into the index at which the target would be inserted to keep the
// data sorted. The result is unspecified for non-negative idx.
func InsertionPoint(idx int) int {
	return -(idx + 1)
}

// Find searches data for target under the given bias. data must be
// sorted ascending; duplicates are allowed.
func Find[T Real](data []T, target T, bias Bias) int {
	return FindFunc(len(data), func(i int) T { return data[i] }, target, bias)
}

// FindRange searches data[start:end] for target under the given bias
// and reports absolute indices into data. It panics if the range is
// not within [0, len(data)] or start > end.
func FindRange[T Real](data []T, start, end int, target T, bias Bias) int {
	if start < 0 || end > len(data) || start > end {
		panic(fmt.Sprintf("search: range [%d:%d] out of bounds for length %d", start, end, len(data)))
	}
	idx := FindFunc(end-start, func(i int) T { return data[start+i] }, target, bias)
	if idx >= 0 {
		return idx + start
	}
	if bias == None {
		return encodeInsertion(InsertionPoint(idx) + start)
	}
	return NotFound
}

// FindFunc searches n index-mapped keys for target under the given
// bias. at(i) must be sorted ascending over [0, n). It panics if n is
// negative or at is nil.
func FindFunc[T Real](n int, at func(int) T, target T, bias Bias) int {
	if n < 0 {
		panic(fmt.Sprintf("search: negative length %d", n))
	}
	if at == nil {
		panic("search: nil accessor")
	}

	switch bias {
	case None:
		lb := lowerBound(n, at, target)
		if lb < n && at(lb) == target {
			return lb
		}
		return encodeInsertion(lb)
	case Forward:
		return findForward(n, at, target)
	case Backward:
		return findBackward(n, at, target)
	case Nearest:
		fwd := findForward(n, at, target)
		bwd := findBackward(n, at, target)
		switch {
		case fwd == NotFound:
			return bwd
		case bwd == NotFound:
			return fwd
		}
		fv, bv := at(fwd), at(bwd)
		if fv == target {
			return fwd
		}
		// fv > target > bv here.
		if forwardNoFarther(fv, bv, target) {
			return fwd
		}
		return bwd
	default:
		panic(fmt.Sprintf("search: unknown bias %d", int(bias)))
	}
}

// findForward returns the lowest index with at(i) >= target.
func findForward[T Real](n int, at func(int) T, target T) int {
	lb := lowerBound(n, at, target)
	if lb == n {
		return NotFound
	}
	return lb
}

// findBackward returns the highest index with at(i) <= target.
func findBackward[T Real](n int, at func(int) T, target T) int {
	ub := upperBound(n, at, target)
	if ub == 0 {
		return NotFound
	}
	return ub - 1
}

// lowerBound returns the lowest index whose key is >= target, or n.
// Runs in O(log n) regardless of duplicates.
func lowerBound[T Real](n int, at func(int) T, target T) int {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if at(mid) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the lowest index whose key is > target, or n.
func upperBound[T Real](n int, at func(int) T, target T) int {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if at(mid) <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// forwardNoFarther reports whether fv is at least as close to target
// as bv, given bv < target < fv. Integer distances are compared as
// uint64 magnitudes; raw subtraction in T would overflow when the
// neighbors straddle more than half of a signed domain.
func forwardNoFarther[T Real](fv, bv, target T) bool {
	if T(1)/T(2) != 0 { // float kind
		return float64(fv)-float64(target) <= float64(target)-float64(bv)
	}
	return magnitude(fv, target) <= magnitude(target, bv)
}

// magnitude returns a-b as a uint64 for the integer kinds, a > b.
func magnitude[T Real](a, b T) uint64 {
	if b < 0 && a >= 0 {
		// Straddles zero: sum the magnitudes in uint64, where they
		// always fit. uint64(b) wraps mod 2^64, so its unsigned
		// negation is |b| even for the minimum signed value.
		return uint64(a) + -uint64(b)
	}
	return uint64(a - b)
}

func encodeInsertion(insertionPoint int) int {
	return -insertionPoint - 1
}
