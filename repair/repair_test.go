package repair

import (
	"testing"

	"github.com/planarfield/voronoi/dcel"
)

// square builds a 4-cycle face (vertices 0-1-2-3-0), each edge typed as
// a point-point bisector, with the outer twins forming the opposite
// rotation so VertexEdges' twin/next trick works at every corner.
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
		g.SetNext(twins[i], twins[(i+3)%4])
	}
	f := g.AddFace(dcel.PointSite{Position: dcel.Vec2{0.5, 0.5}}, edges[0])
	for _, e := range edges {
		g.HalfEdge(e).Face = f
	}

	return g, f, verts
}

func TestAddVerticesCreatesOneNewVertexPerBoundaryEdge(t *testing.T) {
	g, _, verts := square(t)
	g.Vertex(verts[0]).Status = dcel.StatusIn
	g.Vertex(verts[1]).Status = dcel.StatusOut
	g.Vertex(verts[2]).Status = dcel.StatusOut
	g.Vertex(verts[3]).Status = dcel.StatusOut

	s := dcel.PointSite{Position: dcel.Vec2{-0.2, -0.2}}
	newVerts, vertexMap, err := AddVertices(g, s, []dcel.VertexHandle{verts[0]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(newVerts) != 2 {
		t.Fatalf("expected 2 new vertices (one per IN/OUT boundary edge), got %d", len(newVerts))
	}
	if len(vertexMap) != 4 {
		t.Fatalf("expected vertexMap to carry both directed edges for each split, got %d entries", len(vertexMap))
	}
}

func TestRepairFaceSplicesNewBisectorPath(t *testing.T) {
	g, f, verts := square(t)
	g.Vertex(verts[0]).Status = dcel.StatusIn
	g.Vertex(verts[1]).Status = dcel.StatusOut
	g.Vertex(verts[2]).Status = dcel.StatusOut
	g.Vertex(verts[3]).Status = dcel.StatusOut

	s := dcel.PointSite{Position: dcel.Vec2{-0.2, -0.2}}
	_, vertexMap, err := AddVertices(g, s, []dcel.VertexHandle{verts[0]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newFaceEdge, ok := RepairFace(g, f, s, vertexMap)
	if !ok {
		t.Fatalf("expected RepairFace to find a boundary crossing")
	}
	if newFaceEdge == dcel.NilEdge {
		t.Fatalf("expected a valid new-face edge handle")
	}

	// The deleted corner (one IN vertex) is replaced by two new
	// vertices, one on each adjacent edge: a square becomes a
	// pentagon, 4 original edges (2 of them truncated in place) plus
	// the 1 new bisector edge.
	count := 0
	g.Cycle(f, func(e dcel.EdgeHandle) { count++ })
	if count != 5 {
		t.Fatalf("expected repaired face cycle to have 5 edges, got %d", count)
	}

	for _, e := range g.FaceEdges(f) {
		o := g.HalfEdge(e).Origin
		if g.Vertex(o).Status == dcel.StatusIn {
			t.Fatalf("repaired face cycle should contain no IN vertex, found one at edge %d", e)
		}
	}
}
