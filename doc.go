// Package primcoll provides flat, allocation-conscious collections for
// numeric keys: sorted array sets and maps with deferred sorting, and a
// lock-free linked queue (package queue).
//
// # Sorted array collections
//
// Set and Map store their elements in a single backing slice kept in
// ascending order. Ordering work is deferred: an append that extends the
// current maximum costs O(1) and out-of-order appends only mark the
// array as pending; the next search, removal, or iteration pays for one
// sort pass. That makes the append-mostly-ascending workload (event
// timestamps, monotonic IDs) cheap while keeping binary-search reads.
//
//	s := primcoll.NewSet[int]()
//	s.AddAll(5, 1, 3, 1, 4)
//	s.ToSlice()                  // [1 3 4 5]
//	s.RemoveIf(func(v int) bool { return v%2 == 1 })
//	s.ToSlice()                  // [4]
//
// Bulk removal (RemoveIf, RemoveAll, RetainSet) compacts the array in a
// single pass with one block copy per surviving run, so it is O(n) total
// data movement no matter how many elements match.
//
// Floating-point elements and keys must not be NaN. NaN does not order
// against anything, so inserting one is a usage error; it is the
// caller's responsibility, not a checked condition.
//
// # Biased search
//
// Lookups near a key use the search subpackage's bias policies:
//
//	s := primcoll.SetOf(10, 20, 30, 40)
//	v, ok := s.NearestValueTo(27, search.Forward)  // 30, true
//	v, ok = s.NearestValueTo(27, search.Nearest)   // 30, true
//
// # Concurrency
//
// Set and Map are plain mutable values; callers synchronize access.
// Iterators fail fast: structural mutation during iteration panics at
// the next step instead of silently skipping or repeating elements.
// The queue subpackage provides the lock-free multi-producer structure.
package primcoll
