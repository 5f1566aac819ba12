//go:build primcoll_debug

package primcoll

import "fmt"

// assertSorted verifies the strict ascending invariant after a
// compaction pass. Compiled only under the primcoll_debug tag.
func (s *Set[T]) assertSorted() {
	for i := 1; i < len(s.data); i++ {
		if s.data[i-1] >= s.data[i] {
			panic(fmt.Sprintf("primcoll: order violated at index %d", i))
		}
	}
}

// assertSortedKeys is the Map counterpart of assertSorted.
func (m *Map[K, V]) assertSortedKeys() {
	for i := 1; i < len(m.keys); i++ {
		if m.keys[i-1] >= m.keys[i] {
			panic(fmt.Sprintf("primcoll: key order violated at index %d", i))
		}
	}
}
