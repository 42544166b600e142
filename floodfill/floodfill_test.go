package floodfill

import (
	"testing"

	"github.com/planarfield/voronoi/dcel"
)

// square builds a 4-cycle face (vertices 0-1-2-3-0) and returns the
// graph, the face handle and the vertex handles in cycle order.
func square(t *testing.T) (*dcel.Graph, dcel.FaceHandle, []dcel.VertexHandle) {
	t.Helper()
	g := dcel.NewGraph()

	positions := []dcel.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	verts := make([]dcel.VertexHandle, 4)
	for i, p := range positions {
		verts[i] = g.AddVertex(p, 1.0, dcel.TypeNormal)
	}

	edges := make([]dcel.EdgeHandle, 4)
	twins := make([]dcel.EdgeHandle, 4)
	for i := 0; i < 4; i++ {
		e, tw := g.AddEdgePair(dcel.TypeLineEdge)
		edges[i], twins[i] = e, tw
		g.HalfEdge(e).Origin = verts[i]
		g.HalfEdge(tw).Origin = verts[(i+1)%4]
		g.Vertex(verts[i]).Edge = e
	}
	for i := 0; i < 4; i++ {
		g.SetNext(edges[i], edges[(i+1)%4])
	}
	f := g.AddFace(dcel.PointSite{Position: dcel.Vec2{0.5, 0.5}}, edges[0])
	for _, e := range edges {
		g.HalfEdge(e).Face = f
	}

	// Outer twins rotate opposite the inner cycle: next(twin(e)) must
	// land back on a half-edge whose origin is e's origin, which is
	// what lets VertexEdges walk a vertex's star using only twin/next.
	for i := 0; i < 4; i++ {
		g.SetNext(twins[i], twins[(i+3)%4])
	}

	return g, f, verts
}

func TestAugmentVertexSetAcceptsSingleSeed(t *testing.T) {
	g, _, verts := square(t)
	g.Vertex(verts[0]).Status = dcel.StatusIn

	s := dcel.PointSite{Position: dcel.Vec2{0, 0}}
	inSet, incidentFaces := AugmentVertexSet(g, s, verts[0])

	if len(inSet) < 1 || inSet[0] != verts[0] {
		t.Fatalf("expected seed vertex first in inSet, got %+v", inSet)
	}
	if len(incidentFaces) != 1 {
		t.Fatalf("expected exactly one incident face, got %d", len(incidentFaces))
	}
}

func TestSatisfiesC5RejectsFullEngulfment(t *testing.T) {
	g, f, verts := square(t)
	for _, v := range verts {
		g.Vertex(v).Status = dcel.StatusIn
	}
	if satisfiesC5(g, f) {
		t.Fatalf("expected C5 to reject a face with every vertex IN")
	}
}

func TestSatisfiesC4RejectsTwoSeparateArcs(t *testing.T) {
	g, f, verts := square(t)
	// Opposite corners IN, adjacent corners OUT: two disjoint IN runs.
	g.Vertex(verts[0]).Status = dcel.StatusIn
	g.Vertex(verts[2]).Status = dcel.StatusIn
	g.Vertex(verts[1]).Status = dcel.StatusOut
	g.Vertex(verts[3]).Status = dcel.StatusOut

	if satisfiesC4(g, f) {
		t.Fatalf("expected C4 to reject two disconnected IN arcs")
	}
}

func TestSatisfiesC4AcceptsSingleContiguousArc(t *testing.T) {
	g, f, verts := square(t)
	g.Vertex(verts[0]).Status = dcel.StatusIn
	g.Vertex(verts[1]).Status = dcel.StatusIn
	g.Vertex(verts[2]).Status = dcel.StatusOut
	g.Vertex(verts[3]).Status = dcel.StatusOut

	if !satisfiesC4(g, f) {
		t.Fatalf("expected C4 to accept one contiguous IN arc")
	}
}
