// Package predicate evaluates the in-circle predicate that decides
// whether a Voronoi vertex lies inside or outside the region of
// influence of a newly inserted site, and orders candidate vertices by
// confidence via a priority queue, mirroring the iterative,
// confidence-ordered refinement style of the teacher's gjk package.
package predicate

import (
	"container/heap"
	"math"

	"github.com/planarfield/voronoi/dcel"
)

// Item is one entry in the queue: a candidate vertex and the signed
// in-circle predicate value that earned it a place in line.
type Item struct {
	Vertex dcel.VertexHandle
	Value  float64
	seq    int
}

// itemHeap is the container/heap.Interface implementation backing Queue.
// Ordered by descending |Value| (the vertex whose in/out classification
// is most numerically certain is popped first); ties broken by
// insertion order (spec.md §9 "Priority queue of (vertex, |predicate|)").
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	ai, aj := math.Abs(h[i].Value), math.Abs(h[j].Value)
	if ai != aj {
		return ai > aj
	}
	return h[i].seq < h[j].seq
}
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)   { *h = append(*h, x.(Item)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Queue is the max-heap of (vertex, |predicate|) pairs driving the
// flood fill in package floodfill.
type Queue struct {
	h   itemHeap
	seq int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds a candidate vertex with its predicate value.
func (q *Queue) Push(v dcel.VertexHandle, value float64) {
	heap.Push(&q.h, Item{Vertex: v, Value: value, seq: q.seq})
	q.seq++
}

// Pop removes and returns the highest-confidence candidate. ok is false
// when the queue is empty.
func (q *Queue) Pop() (item Item, ok bool) {
	if q.h.Len() == 0 {
		return Item{}, false
	}
	return heap.Pop(&q.h).(Item), true
}

// Len reports how many candidates remain.
func (q *Queue) Len() int {
	return q.h.Len()
}
