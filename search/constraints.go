package search

// Real is the constraint satisfied by every built-in numeric kind.
// It is the key domain of the search functions and of the sorted
// containers built on top of them.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Integer is the constraint satisfied by the built-in integer kinds.
// Operations that rely on value adjacency (consecutive-run grouping,
// range complement) require it.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
