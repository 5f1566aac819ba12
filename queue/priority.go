package queue

import (
	"fmt"

	"github.com/hupe1980/primcoll/search"
)

// Priority is a binary heap of numeric values with value-based
// storage, so pushes and pops allocate nothing beyond the backing
// slice. The value itself is the priority.
type Priority[T search.Real] struct {
	isMaxHeap bool // true = max heap, false = min heap
	items     []T
}

// NewMin initializes a priority queue that pops the smallest value
// first.
func NewMin[T search.Real](capacity int) *Priority[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("queue: negative capacity %d", capacity))
	}

	return &Priority[T]{
		isMaxHeap: false,
		items:     make([]T, 0, capacity),
	}
}

// NewMax initializes a priority queue that pops the largest value
// first.
func NewMax[T search.Real](capacity int) *Priority[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("queue: negative capacity %d", capacity))
	}

	return &Priority[T]{
		isMaxHeap: true,
		items:     make([]T, 0, capacity),
	}
}

// TopItem returns the top value of the heap without removing it.
func (pq *Priority[T]) TopItem() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}

	return pq.items[0], true
}

// PushItem inserts v while maintaining the heap invariant.
func (pq *Priority[T]) PushItem(v T) {
	pq.items = append(pq.items, v)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the top value while maintaining the
// heap invariant.
func (pq *Priority[T]) PopItem() (T, bool) {
	n := len(pq.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]

	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}

	return root, true
}

// MinItem returns the smallest value currently queued. For min-heaps
// this is the top value; for max-heaps this scans the backing slice.
func (pq *Priority[T]) MinItem() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}

	if !pq.isMaxHeap {
		return pq.items[0], true
	}

	min := pq.items[0]
	for i := 1; i < len(pq.items); i++ {
		if pq.items[i] < min {
			min = pq.items[i]
		}
	}

	return min, true
}

// Len returns the number of values in the priority queue.
func (pq *Priority[T]) Len() int { return len(pq.items) }

// Reset clears the priority queue for reuse, keeping the backing
// slice.
func (pq *Priority[T]) Reset() {
	pq.items = pq.items[:0]
}

func (pq *Priority[T]) less(i, j int) bool {
	if pq.isMaxHeap {
		return pq.items[i] > pq.items[j]
	}

	return pq.items[i] < pq.items[j]
}

func (pq *Priority[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}

		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *Priority[T]) siftDown(i int) {
	n := len(pq.items)

	for {
		l := 2*i + 1
		if l >= n {
			return
		}

		best := l

		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}

		if !pq.less(best, i) {
			return
		}

		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
