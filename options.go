package primcoll

import "fmt"

type options struct {
	capacity int
}

// Option configures set and map constructors.
type Option func(*options)

// WithCapacity preallocates backing storage for n elements, avoiding
// reallocation during an initial load. A negative n panics.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{}

	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.capacity < 0 {
		panic(fmt.Sprintf("primcoll: negative capacity %d", o.capacity))
	}

	return o
}
