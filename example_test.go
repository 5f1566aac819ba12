package primcoll_test

import (
	"fmt"

	"github.com/hupe1980/primcoll"
	"github.com/hupe1980/primcoll/search"
)

func ExampleSetOf() {
	s := primcoll.SetOf(5, 1, 3, 1, 4)
	fmt.Println(s.ToSlice())

	s.RemoveIf(func(v int) bool { return v%2 == 1 })
	fmt.Println(s.ToSlice())
	// Output:
	// [1 3 4 5]
	// [4]
}

// ExampleSet_NearestValueTo shows the four search bias policies against
// the same missing key.
func ExampleSet_NearestValueTo() {
	s := primcoll.SetOf(10, 20, 30, 40)

	v, _ := s.NearestValueTo(27, search.Forward)
	fmt.Println("forward:", v)

	v, _ = s.NearestValueTo(27, search.Backward)
	fmt.Println("backward:", v)

	v, _ = s.NearestValueTo(27, search.Nearest)
	fmt.Println("nearest:", v)

	_, ok := s.NearestValueTo(27, search.None)
	fmt.Println("exact:", ok)
	// Output:
	// forward: 30
	// backward: 20
	// nearest: 30
	// exact: false
}

func ExampleMap() {
	m := primcoll.NewMap[int, string]()
	m.Put(30, "thirty")
	m.Put(10, "ten")
	m.Put(20, "twenty")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// 10 ten
	// 20 twenty
	// 30 thirty
}

func ExampleConsecutiveRuns() {
	s := primcoll.SetOf(1, 2, 3, 7, 8, 12)

	for start, end := range primcoll.ConsecutiveRuns(s) {
		fmt.Printf("run of %d at [%d:%d)\n", end-start, start, end)
	}
	// Output:
	// run of 3 at [0:3)
	// run of 2 at [3:5)
	// run of 1 at [5:6)
}
