package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntsInRange(t *testing.T) {
	rng := NewRNG(4711)

	vals := rng.IntsInRange(256, -50, 50)

	assert.Equal(t, 256, len(vals))
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, -50)
		assert.Less(t, v, 50)
	}
}

func TestFloat64s(t *testing.T) {
	rng := NewRNG(4711)

	vals := rng.Float64s(64)

	assert.Equal(t, 64, len(vals))
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestPerm(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.Perm(32)

	seen := make([]bool, 32)
	for _, i := range p {
		seen[i] = true
	}

	for i, ok := range seen {
		assert.True(t, ok, "index %d missing from permutation", i)
	}
}

func TestShuffle(t *testing.T) {
	rng := NewRNG(4711)

	vals := []int{1, 2, 3, 4, 5, 6, 7, 8}
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, vals)
}

func TestSortedUnique(t *testing.T) {
	vals := []int{5, 1, 3, 1, 4}

	got := SortedUnique(vals)

	assert.Equal(t, []int{1, 3, 4, 5}, got)
	assert.Equal(t, []int{5, 1, 3, 1, 4}, vals, "input must stay untouched")
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.IntsInRange(16, 0, 100)
	u1 := rng.Uint64()

	rng.Reset()
	v2 := rng.IntsInRange(16, 0, 100)
	u2 := rng.Uint64()

	assert.Equal(t, v1, v2)
	assert.Equal(t, u1, u2)
	assert.Equal(t, int64(4711), rng.Seed())
}
