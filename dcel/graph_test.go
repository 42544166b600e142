package dcel

import "testing"

func TestAddVertexRecyclesSlotWithBumpedGeneration(t *testing.T) {
	g := NewGraph()

	v1 := g.AddVertex(Vec2{0, 0}, 1.0, TypeNormal)
	if g.vertices[v1].generation != 0 {
		t.Fatalf("expected generation 0 on first allocation, got %d", g.vertices[v1].generation)
	}
	firstIndex := g.vertices[v1].Index

	g.RemoveVertex(v1)
	v2 := g.AddVertex(Vec2{1, 1}, 2.0, TypeNormal)

	if v2 != v1 {
		t.Fatalf("expected recycled slot %d, got %d", v1, v2)
	}
	if g.vertices[v2].generation != 1 {
		t.Fatalf("expected generation bumped to 1, got %d", g.vertices[v2].generation)
	}
	if g.vertices[v2].Index == firstIndex {
		t.Fatalf("expected distinct monotonic index across reuse")
	}
}

func TestAddEdgePairAreTwins(t *testing.T) {
	g := NewGraph()
	a, b := g.AddEdgePair(TypeLineEdge)

	if g.Twin(a) != b || g.Twin(b) != a {
		t.Fatalf("expected %d and %d to be mutual twins", a, b)
	}
}

func TestFaceCycleVisitsEachEdgeOnce(t *testing.T) {
	g := NewGraph()
	v0 := g.AddVertex(Vec2{0, 0}, 0, TypeNormal)
	v1 := g.AddVertex(Vec2{1, 0}, 0, TypeNormal)
	v2 := g.AddVertex(Vec2{0, 1}, 0, TypeNormal)

	e01, e10 := g.AddEdgePair(TypeLineEdge)
	e12, e21 := g.AddEdgePair(TypeLineEdge)
	e20, e02 := g.AddEdgePair(TypeLineEdge)

	g.HalfEdge(e01).Origin = v0
	g.HalfEdge(e12).Origin = v1
	g.HalfEdge(e20).Origin = v2
	g.HalfEdge(e10).Origin = v1
	g.HalfEdge(e21).Origin = v2
	g.HalfEdge(e02).Origin = v0

	g.SetNext(e01, e12)
	g.SetNext(e12, e20)
	g.SetNext(e20, e01)

	f := g.AddFace(PointSite{Position: Vec2{0.3, 0.3}}, e01)
	g.HalfEdge(e01).Face = f
	g.HalfEdge(e12).Face = f
	g.HalfEdge(e20).Face = f

	var visited []EdgeHandle
	g.Cycle(f, func(e EdgeHandle) { visited = append(visited, e) })

	if len(visited) != 3 {
		t.Fatalf("expected 3 edges in cycle, got %d", len(visited))
	}
}

func TestPointInterpolatesLinearEdge(t *testing.T) {
	g := NewGraph()
	v0 := g.AddVertex(Vec2{0, 0}, 0, TypeNormal)
	v1 := g.AddVertex(Vec2{2, 0}, 0, TypeNormal)
	e, twin := g.AddEdgePair(TypeLineEdge)
	g.HalfEdge(e).Origin = v0
	g.HalfEdge(twin).Origin = v1

	mid := g.Point(e, 0.5)
	if mid.X() != 1 || mid.Y() != 0 {
		t.Fatalf("expected midpoint (1,0), got %v", mid)
	}
}
