// Package queue provides a lock-free multi-producer/multi-consumer
// linked queue built around a single atomic tail reference, plus a
// value-based binary heap for single-owner priority ordering.
//
// # Concurrency Model
//
// Atomic supports concurrent Push, Pop, Drain, DrainTo and
// RemoveFirstMatch from any number of goroutines. The sole
// coordination primitive is compare-and-swap on the tail cell; no
// operation blocks or takes a lock. Whole-chain reads (Len, Items,
// ContainsFunc, String) walk the live chain without detaching it and
// therefore observe a consistent view only when no mutation is in
// flight; use Snapshot or Drain when a stable view is required.
//
// Priority is NOT safe for concurrent use. It is a plain mutable
// value owned by one goroutine at a time.
//
// # Ownership
//
// Entries are immutable after construction except for their prev
// link. A chain reachable from a live tail may be observed by any
// number of goroutines, so every helper that restructures a chain
// (ReverseInPlace, RemoveFirstMatch, Snapshot, Clone) copies the
// affected entries and publishes the copy with a single tail swap.
// Detaching a chain (Drain, DrainTo, TransferContentsFrom) transfers
// exclusive ownership in one atomic step, which is why transfers
// relink existing entries instead of copying them.
package queue

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// entry is a single queue node. The value is immutable; prev is held
// atomically because the oldest entry of a detached chain is relinked
// onto another queue's tail during transfers.
type entry[T any] struct {
	value T
	prev  atomic.Pointer[entry[T]]
}

// Atomic is a lock-free linked queue referenced by its newest entry.
// Following prev links from the tail reaches the oldest entry; the
// chain always terminates in nil.
//
// The zero value is an empty queue ready for use.
type Atomic[T any] struct {
	tail  atomic.Pointer[entry[T]]
	stats atomicStats
}

// New creates an empty queue.
func New[T any]() *Atomic[T] {
	return &Atomic[T]{}
}

// Of creates a queue holding vals, pushed in order, so the last value
// is the newest entry.
func Of[T any](vals ...T) *Atomic[T] {
	q := New[T]()
	for _, v := range vals {
		q.Push(v)
	}

	return q
}

// Push appends v as the newest entry. It never blocks; under
// contention the tail swap is retried until it lands.
func (q *Atomic[T]) Push(v T) {
	e := &entry[T]{value: v}
	q.stats.EntriesAllocated.Add(1)

	for {
		tail := q.tail.Load()
		e.prev.Store(tail)

		if q.tail.CompareAndSwap(tail, e) {
			return
		}

		q.stats.CASRetries.Add(1)
	}
}

// Pop removes and returns the newest entry's value. The second result
// is false when the queue is empty.
func (q *Atomic[T]) Pop() (T, bool) {
	for {
		tail := q.tail.Load()
		if tail == nil {
			var zero T
			return zero, false
		}

		if q.tail.CompareAndSwap(tail, tail.prev.Load()) {
			return tail.value, true
		}

		q.stats.CASRetries.Add(1)
	}
}

// Peek returns the newest entry's value without removing it. The
// second result is false when the queue is empty.
func (q *Atomic[T]) Peek() (T, bool) {
	if tail := q.tail.Load(); tail != nil {
		return tail.value, true
	}

	var zero T

	return zero, false
}

// Remove is the strict form of Pop: it returns ErrEmpty instead of an
// ok flag when the queue is empty.
func (q *Atomic[T]) Remove() (T, error) {
	v, ok := q.Pop()
	if !ok {
		return v, ErrEmpty
	}

	return v, nil
}

// Element is the strict form of Peek: it returns ErrEmpty instead of
// an ok flag when the queue is empty.
func (q *Atomic[T]) Element() (T, error) {
	v, ok := q.Peek()
	if !ok {
		return v, ErrEmpty
	}

	return v, nil
}

// Drain atomically detaches the whole chain and returns its values
// oldest first. Values pushed concurrently with the detach land on
// the live queue and are not included.
func (q *Atomic[T]) Drain() []T {
	tail := q.tail.Swap(nil)
	if tail == nil {
		return nil
	}

	q.stats.Drains.Add(1)

	return collect(tail)
}

// DrainTo moves the whole chain onto dst. The chain is detached
// first, which makes it exclusively owned, so the graft relinks the
// existing entries instead of copying them: one prev rewire and a
// tail swap per attempt, no entry allocations regardless of length.
func (q *Atomic[T]) DrainTo(dst *Atomic[T]) {
	if dst == nil {
		panic("queue: nil destination queue")
	}

	if dst == q {
		panic("queue: cannot drain a queue into itself")
	}

	newest := q.tail.Swap(nil)
	if newest == nil {
		return
	}

	q.stats.Drains.Add(1)
	dst.graft(newest)
}

// TransferContentsFrom moves src's whole chain onto q. It is DrainTo
// with the roles reversed.
func (q *Atomic[T]) TransferContentsFrom(src *Atomic[T]) {
	if src == nil {
		panic("queue: nil source queue")
	}

	src.DrainTo(q)
}

// graft links an exclusively owned chain, given by its newest entry,
// onto q's tail.
func (q *Atomic[T]) graft(newest *entry[T]) {
	oldest := newest
	for {
		p := oldest.prev.Load()
		if p == nil {
			break
		}

		oldest = p
	}

	for {
		tail := q.tail.Load()
		oldest.prev.Store(tail)

		if q.tail.CompareAndSwap(tail, newest) {
			q.stats.Grafts.Add(1)
			return
		}

		q.stats.CASRetries.Add(1)
	}
}

// RemoveFirstMatch removes the first entry, counted from the newest
// end, whose value satisfies match. The removal is optimistic: the
// entries newer than the match are copied, spliced to the untouched
// older suffix and published with one tail swap; the whole pass is
// retried when a concurrent mutation moves the tail. An entry removed
// concurrently by another goroutine may be missed; callers that need
// certainty must retry.
func (q *Atomic[T]) RemoveFirstMatch(match func(T) bool) bool {
	if match == nil {
		panic("queue: nil match func")
	}

	for {
		tail := q.tail.Load()

		var target *entry[T]
		for e := tail; e != nil; e = e.prev.Load() {
			if match(e.value) {
				target = e
				break
			}
		}

		if target == nil {
			return false
		}

		suffix := target.prev.Load()

		newTail := suffix
		if target != tail {
			head := &entry[T]{value: tail.value}
			cur := head
			copied := uint64(1)

			for e := tail.prev.Load(); e != target; e = e.prev.Load() {
				c := &entry[T]{value: e.value}
				cur.prev.Store(c)
				cur = c
				copied++
			}

			cur.prev.Store(suffix)
			q.stats.EntriesAllocated.Add(copied)
			newTail = head
		}

		if q.tail.CompareAndSwap(tail, newTail) {
			q.stats.Removes.Add(1)
			return true
		}

		q.stats.CASRetries.Add(1)
	}
}

// RemoveValue removes the first entry, counted from the newest end,
// equal to v. For pointer element types this is removal by identity.
func RemoveValue[T comparable](q *Atomic[T], v T) bool {
	return q.RemoveFirstMatch(func(x T) bool { return x == v })
}

// ReverseInPlace replaces the chain with its reversal, so the oldest
// value becomes the newest. The live chain is never mutated; a
// reversed copy is built and published with one tail swap, retried
// when a concurrent mutation moves the tail.
func (q *Atomic[T]) ReverseInPlace() {
	for {
		tail := q.tail.Load()
		if tail == nil {
			return
		}

		var rev *entry[T]

		n := uint64(0)
		for e := tail; e != nil; e = e.prev.Load() {
			c := &entry[T]{value: e.value}
			c.prev.Store(rev)
			rev = c
			n++
		}

		q.stats.EntriesAllocated.Add(n)

		if q.tail.CompareAndSwap(tail, rev) {
			return
		}

		q.stats.CASRetries.Add(1)
	}
}

// Clear detaches and discards the whole chain.
func (q *Atomic[T]) Clear() {
	if q.tail.Swap(nil) != nil {
		q.stats.Drains.Add(1)
	}
}

// Clone returns a new queue holding a deep copy of the chain as
// observed in one walk. The clone starts with fresh statistics.
func (q *Atomic[T]) Clone() *Atomic[T] {
	dst := New[T]()

	tail := q.tail.Load()
	if tail == nil {
		return dst
	}

	dst.tail.Store(copyChain(tail, &dst.stats))

	return dst
}

// Len walks the live chain and counts entries. The walk is not atomic
// with respect to concurrent mutation; detach or snapshot the queue
// first when an exact count is required.
func (q *Atomic[T]) Len() int {
	n := 0
	for e := q.tail.Load(); e != nil; e = e.prev.Load() {
		n++
	}

	return n
}

// IsEmpty reports whether the queue has no entries.
func (q *Atomic[T]) IsEmpty() bool {
	return q.tail.Load() == nil
}

// ContainsFunc reports whether any value in the live chain satisfies
// f. Like Len, the walk is not atomic.
func (q *Atomic[T]) ContainsFunc(f func(T) bool) bool {
	if f == nil {
		panic("queue: nil match func")
	}

	for e := q.tail.Load(); e != nil; e = e.prev.Load() {
		if f(e.value) {
			return true
		}
	}

	return false
}

// Items returns the live chain's values oldest first without
// detaching them. Like Len, the walk is not atomic.
func (q *Atomic[T]) Items() []T {
	tail := q.tail.Load()
	if tail == nil {
		return nil
	}

	return collect(tail)
}

func (q *Atomic[T]) String() string {
	return fmt.Sprintf("%v", q.Items())
}

// Stats returns a snapshot of the queue's activity counters.
func (q *Atomic[T]) Stats() Stats {
	return q.stats.snapshot()
}

// collect walks a chain from its newest entry and returns the values
// oldest first. It walks exactly once: a concurrent graft may extend
// the chain's oldest end mid-read, so a count-then-fill pass over the
// same links could see two different lengths.
func collect[T any](tail *entry[T]) []T {
	var out []T
	for e := tail; e != nil; e = e.prev.Load() {
		out = append(out, e.value)
	}

	slices.Reverse(out)

	return out
}

// copyChain deep-copies the chain reachable from tail, preserving
// order, and returns the copy's newest entry.
func copyChain[T any](tail *entry[T], stats *atomicStats) *entry[T] {
	head := &entry[T]{value: tail.value}
	cur := head
	n := uint64(1)

	for e := tail.prev.Load(); e != nil; e = e.prev.Load() {
		c := &entry[T]{value: e.value}
		cur.prev.Store(c)
		cur = c
		n++
	}

	stats.EntriesAllocated.Add(n)

	return head
}
