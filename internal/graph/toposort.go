package graph

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrCycle reports that the dependencies form a cycle.
var ErrCycle = errors.New("reference cycle detected")

// CycleError lists the nodes left unordered because they sit on, or depend
// on, a cycle. It matches ErrCycle under errors.Is.
type CycleError struct {
	Unordered []int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %d node(s) unordered %v", ErrCycle, len(e.Unordered), e.Unordered)
}

func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// TopoSort orders the n nodes of a reference closure so every node comes
// after the nodes it references. depsFn(i) yields the indices i references;
// repeated entries are allowed, since one object may point at the same
// target from several slots.
//
// Among ready nodes the smallest index goes first, so a closure gathered in
// a fixed order always copies in the same order. A cycle yields *CycleError.
func TopoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	pending := make([]int, n)
	users := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			pending[i]++
			users[d] = append(users[d], i)
		}
	}

	ready := &minHeap{}

	for i, p := range pending {
		if p == 0 {
			*ready = append(*ready, i)
		}
	}

	heap.Init(ready)

	order := make([]int, 0, n)

	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		order = append(order, i)

		for _, u := range users[i] {
			pending[u]--
			if pending[u] == 0 {
				heap.Push(ready, u)
			}
		}
	}

	if len(order) == n {
		return order, nil
	}

	cerr := &CycleError{}

	for i, p := range pending {
		if p > 0 {
			cerr.Unordered = append(cerr.Unordered, i)
		}
	}

	return nil, cerr
}

type minHeap []int

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *minHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
