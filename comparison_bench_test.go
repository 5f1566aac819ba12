package primcoll

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/btree"
)

// Comparative benchmarks: Set vs Roaring Bitmap vs google/btree
// Run with: go test -bench=Comparison -benchmem .

// ==============================================================================
// Ascending add comparison (the fast-append path)
// ==============================================================================

func BenchmarkComparison_AddAscending_Set(b *testing.B) {
	s := NewSet[uint32](WithCapacity(1000))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		for v := uint32(0); v < 1000; v++ {
			s.Add(v)
		}
	}
}

func BenchmarkComparison_AddAscending_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Clear()
		for v := uint32(0); v < 1000; v++ {
			rb.Add(v)
		}
	}
}

func BenchmarkComparison_AddAscending_BTree(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := btree.New(32)
		for v := 0; v < 1000; v++ {
			tr.ReplaceOrInsert(btree.Int(v))
		}
	}
}

// ==============================================================================
// Membership comparison
// ==============================================================================

func BenchmarkComparison_Contains_Set(b *testing.B) {
	s := NewSet[uint32](WithCapacity(10000))
	for v := uint32(0); v < 10000; v++ {
		s.Add(v)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(uint32(i) % 20000)
	}
}

func BenchmarkComparison_Contains_Roaring(b *testing.B) {
	rb := roaring.New()
	rb.AddRange(0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = rb.Contains(uint32(i) % 20000)
	}
}

func BenchmarkComparison_Contains_BTree(b *testing.B) {
	tr := btree.New(32)
	for v := 0; v < 10000; v++ {
		tr.ReplaceOrInsert(btree.Int(v))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tr.Get(btree.Int(i%20000)) != nil
	}
}

// ==============================================================================
// Iteration comparison
// ==============================================================================

func BenchmarkComparison_Iterate10K_Set(b *testing.B) {
	s := NewSet[uint32](WithCapacity(10000))
	for v := uint32(0); v < 10000; v++ {
		s.Add(v)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		count := 0
		for range s.Values() {
			count++
		}
		_ = count
	}
}

func BenchmarkComparison_Iterate10K_Roaring(b *testing.B) {
	rb := roaring.New()
	rb.AddRange(0, 10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		count := 0
		rb.Iterate(func(uint32) bool {
			count++
			return true
		})
		_ = count
	}
}

func BenchmarkComparison_Iterate10K_BTree(b *testing.B) {
	tr := btree.New(32)
	for v := 0; v < 10000; v++ {
		tr.ReplaceOrInsert(btree.Int(v))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		count := 0
		tr.Ascend(func(btree.Item) bool {
			count++
			return true
		})
		_ = count
	}
}

// ==============================================================================
// Intersection comparison
// ==============================================================================

func BenchmarkComparison_Intersect10K_Set(b *testing.B) {
	a := NewSet[uint32](WithCapacity(10000))
	x := NewSet[uint32](WithCapacity(10000))
	for v := uint32(0); v < 10000; v++ {
		a.Add(v)
		x.Add(v + 5000)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.Intersect(x)
	}
}

func BenchmarkComparison_Intersect10K_Roaring(b *testing.B) {
	a := roaring.New()
	a.AddRange(0, 10000)
	x := roaring.New()
	x.AddRange(5000, 15000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		result := a.Clone()
		result.And(x)
	}
}
