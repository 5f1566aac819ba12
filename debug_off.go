//go:build !primcoll_debug

package primcoll

func (s *Set[T]) assertSorted() {}

func (m *Map[K, V]) assertSortedKeys() {}
