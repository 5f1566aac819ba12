package queue

import (
	"fmt"
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func collectSeq[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestSnapshot_StableView(t *testing.T) {
	q := Of(1, 2, 3)

	s := q.Snapshot()
	require.Equal(t, 3, s.Len())

	// Later queue mutations must not show through.
	q.Push(4)
	q.Clear()

	assert.Equal(t, []int{1, 2, 3}, collectSeq(s.All()))
}

func TestSnapshot_Split(t *testing.T) {
	s := Of(1, 2, 3, 4, 5).Snapshot()

	newer := s.Split()
	require.NotNil(t, newer)

	// The receiver keeps the older half.
	assert.Equal(t, []int{1, 2}, collectSeq(s.All()))
	assert.Equal(t, []int{3, 4, 5}, collectSeq(newer.All()))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, newer.Len())

	// Fewer than two values cannot be split.
	assert.Nil(t, Of(9).Snapshot().Split())
	assert.Nil(t, New[int]().Snapshot().Split())
}

func TestSnapshot_AllEarlyBreak(t *testing.T) {
	s := Of(1, 2, 3).Snapshot()

	var got []int
	for v := range s.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, got)
}

func TestSnapshot_ParallelConsumption(t *testing.T) {
	const n = 1000

	q := New[int]()
	for i := 0; i < n; i++ {
		q.Push(i)
	}

	// Split the snapshot into four disjoint parts.
	parts := []*Snapshot[int]{q.Snapshot()}
	for len(parts) < 4 {
		var next []*Snapshot[int]
		for _, p := range parts {
			next = append(next, p)
			if newer := p.Split(); newer != nil {
				next = append(next, newer)
			}
		}
		parts = next
	}

	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	require.Equal(t, n, total)

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	seen := make(map[int]bool, n)

	for _, p := range parts {
		g.Go(func() error {
			local := collectSeq(p.All())

			// The live queue keeps mutating while parts are consumed.
			q.Push(-1)

			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				if seen[v] {
					return fmt.Errorf("value %d consumed twice", v)
				}
				seen[v] = true
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Len(t, seen, n)
}
