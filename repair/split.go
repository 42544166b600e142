package repair

import (
	"github.com/planarfield/voronoi/dcel"
	"github.com/planarfield/voronoi/position"
)

// FindSplitEdges implements find_split_edges (spec.md §4.4 step 5): it
// scans f's boundary for PARABOLA edges whose two endpoints straddle
// the infinite line through the segment's endpoints — the signature of
// a bisector that degenerated onto the segment's own supporting line
// and needs an extra vertex to stay a proper subdivision.
func FindSplitEdges(g *dcel.Graph, f dcel.FaceHandle, line dcel.LineSite) []dcel.EdgeHandle {
	var out []dcel.EdgeHandle
	for _, e := range g.FaceEdges(f) {
		if g.HalfEdge(e).Type != dcel.TypeParabola {
			continue
		}
		origin, dest := g.Endpoints(e)
		d0 := line.SignedDistanceToLine(g.Vertex(origin).Position)
		d1 := line.SignedDistanceToLine(g.Vertex(dest).Position)
		if (d0 > 0) != (d1 > 0) {
			out = append(out, e)
		}
	}
	return out
}

// AddSplitVertex implements add_split_vertex: for each candidate edge
// found by FindSplitEdges, it brackets the signed-distance-to-line
// residual with position.FindRoot and subdivides the edge at the
// resulting parameter, inserting a TypeSplit vertex of degree 2 so the
// degenerate boundary no longer straddles the segment's line.
func AddSplitVertex(g *dcel.Graph, f dcel.FaceHandle, line dcel.LineSite) ([]dcel.VertexHandle, error) {
	var splits []dcel.VertexHandle

	for _, e := range FindSplitEdges(g, f, line) {
		pointAt := func(t float64) dcel.Vec2 { return g.Point(e, t) }
		residual := func(t float64) float64 { return line.SignedDistanceToLine(pointAt(t)) }

		t, err := position.FindRoot(residual, 0, 1)
		if err != nil {
			return splits, err
		}

		nv := subdivideEdge(g, e, pointAt(t), line.DistanceTo(pointAt(t)), dcel.TypeSplit)
		splits = append(splits, nv)
	}

	return splits, nil
}

// subdivideEdge splits half-edge pair e/twin(e) at pos, inserting a new
// degree-2 vertex of the given type. e keeps its origin and now points
// to the new vertex; a freshly allocated pair carries the new vertex to
// e's old destination. Face-cycle next pointers on both sides of the
// original edge are relinked so both face cycles remain valid; the
// twin/next vertex-rotation identity then holds automatically.
func subdivideEdge(g *dcel.Graph, e dcel.EdgeHandle, pos dcel.Vec2, clearance float64, typ dcel.VertexType) dcel.VertexHandle {
	teOld := g.Twin(e)
	_, destVertex := g.Endpoints(e)
	faceA := g.HalfEdge(e).Face
	faceB := g.HalfEdge(teOld).Face
	edgeType := g.HalfEdge(e).Type
	nextOfE := g.Next(e)

	var prevInFaceB dcel.EdgeHandle = dcel.NilEdge
	if faceB != dcel.NilFace {
		g.Cycle(faceB, func(cur dcel.EdgeHandle) {
			if g.Next(cur) == teOld {
				prevInFaceB = cur
			}
		})
	}

	nv := g.AddVertex(pos, clearance, typ)

	e2, e2Twin := g.AddEdgePair(edgeType)
	g.HalfEdge(e2).Origin = nv
	g.HalfEdge(e2).Face = faceA
	g.HalfEdge(e2Twin).Origin = destVertex
	g.HalfEdge(e2Twin).Face = faceB

	g.HalfEdge(teOld).Origin = nv

	g.SetNext(e, e2)
	g.SetNext(e2, nextOfE)
	if prevInFaceB != dcel.NilEdge {
		g.SetNext(prevInFaceB, e2Twin)
	}
	g.SetNext(e2Twin, teOld)

	g.Vertex(nv).Status = dcel.StatusNew
	g.Vertex(nv).Edge = e2

	return nv
}
