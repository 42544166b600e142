package predicate

import (
	"testing"

	"github.com/planarfield/voronoi/dcel"
)

func TestQueuePopsLargestMagnitudeFirst(t *testing.T) {
	q := NewQueue()
	q.Push(dcel.VertexHandle(0), 0.5)
	q.Push(dcel.VertexHandle(1), -3.0)
	q.Push(dcel.VertexHandle(2), 1.2)

	first, ok := q.Pop()
	if !ok || first.Vertex != dcel.VertexHandle(1) {
		t.Fatalf("expected vertex 1 (|value|=3.0) first, got %+v", first)
	}

	second, ok := q.Pop()
	if !ok || second.Vertex != dcel.VertexHandle(2) {
		t.Fatalf("expected vertex 2 (|value|=1.2) second, got %+v", second)
	}

	third, ok := q.Pop()
	if !ok || third.Vertex != dcel.VertexHandle(0) {
		t.Fatalf("expected vertex 0 (|value|=0.5) third, got %+v", third)
	}

	if _, ok := q.Pop(); ok {
		t.Fatalf("expected queue to be drained")
	}
}

func TestQueueTiesBrokenByInsertionOrder(t *testing.T) {
	q := NewQueue()
	q.Push(dcel.VertexHandle(10), 1.0)
	q.Push(dcel.VertexHandle(11), -1.0)

	first, _ := q.Pop()
	if first.Vertex != dcel.VertexHandle(10) {
		t.Fatalf("expected earlier-pushed vertex 10 first on a tie, got %+v", first)
	}
}

func TestInCirclePositiveWhenSiteCloserThanClearance(t *testing.T) {
	g := dcel.NewGraph()
	v := g.AddVertex(dcel.Vec2{0, 0}, 5.0, dcel.TypeNormal)

	near := dcel.PointSite{Position: dcel.Vec2{1, 0}}
	far := dcel.PointSite{Position: dcel.Vec2{10, 0}}

	if got := InCircle(g, v, near); got <= 0 {
		t.Fatalf("expected positive predicate for closer site, got %v", got)
	}
	if got := InCircle(g, v, far); got >= 0 {
		t.Fatalf("expected negative predicate for farther site, got %v", got)
	}
}
