package primcoll

import "errors"

var (
	// ErrReadOnly is the panic value raised by every mutating method of a
	// read-only view. Mutation through a view is a programming error, so
	// it fails loudly instead of being silently ignored.
	ErrReadOnly = errors.New("collection is read-only")
)
