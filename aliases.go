package primcoll

// Names for the common set instantiations.
type (
	IntSet     = Set[int]
	Int64Set   = Set[int64]
	Uint32Set  = Set[uint32]
	Float64Set = Set[float64]
)

// Names for the common map instantiations.
type (
	IntMap[V any]     = Map[int, V]
	Float64Map[V any] = Map[float64, V]
)
