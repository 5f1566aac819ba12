package queue_test

import (
	"fmt"

	"github.com/hupe1980/primcoll/queue"
)

func ExampleAtomic() {
	q := queue.New[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	v, _ := q.Pop()
	fmt.Println("popped:", v)
	fmt.Println("drained:", q.Drain())
	// Output:
	// popped: 3
	// drained: [1 2]
}

func ExampleAtomic_DrainTo() {
	src := queue.Of(1, 2)
	dst := queue.Of(10)

	src.DrainTo(dst)

	fmt.Println(dst.Drain())
	fmt.Println(src.IsEmpty())
	// Output:
	// [10 1 2]
	// true
}

func ExampleNewMin() {
	pq := queue.NewMin[float64](4)
	pq.PushItem(0.5)
	pq.PushItem(0.1)
	pq.PushItem(0.9)

	for pq.Len() > 0 {
		v, _ := pq.PopItem()
		fmt.Println(v)
	}
	// Output:
	// 0.1
	// 0.5
	// 0.9
}
