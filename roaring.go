package primcoll

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring converts the set into a roaring bitmap, for boundaries that
// exchange compressed posting lists.
func ToRoaring(s *Set[uint32]) *roaring.Bitmap {
	if s == nil {
		panic("primcoll: nil set")
	}

	s.ensureSorted()

	rb := roaring.New()
	rb.AddMany(s.data)

	return rb
}

// FromRoaring builds a set from a roaring bitmap. The bitmap's
// ascending element order carries over directly, so no sort is owed.
func FromRoaring(rb *roaring.Bitmap) *Set[uint32] {
	if rb == nil {
		panic("primcoll: nil bitmap")
	}

	s := &Set[uint32]{data: rb.ToArray()}
	s.syncMax()

	return s
}
