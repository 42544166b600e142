// Package repair implements the post-flood-fill reconstruction steps of
// an insertion (spec.md §4.2 steps 4-6, §4.4 steps 4-6, §4.5): creating
// NEW vertices on the IN/OUT boundary, splicing a new half-edge path
// into each incident face's cycle, and the segment-site extras
// (separators, split vertices).
//
// The "speculatively generate new boundary geometry, then splice it into
// the structure that survives" shape is grounded on epa/manifold.go's
// ManifoldBuilder: it also derives new points from existing feature
// geometry (clipped contact points) and hands them to a structure
// (constraint.ContactConstraint) that consumes them as a fixed list, the
// same role EdgeData plays here for repair_face.
package repair

import (
	"github.com/planarfield/voronoi/dcel"
	"github.com/planarfield/voronoi/position"
)

// AddVertices implements add_vertices (spec.md §4.2 step 4): for every
// edge with one IN and one OUT endpoint, it creates a NEW vertex at the
// point on that edge where s becomes equidistant from the edge's
// bordering face site, via position.OnEdge. The returned vertexMap
// records the NEW vertex under both directed half-edges of the split
// edge, so repair_face can look it up from either incident face. The
// bordering face site is taken from the half-edge leaving the IN vertex,
// or from its twin when that side has no face. On error, every NEW vertex
// created so far is removed again before returning.
func AddVertices(g *dcel.Graph, s dcel.Site, inSet []dcel.VertexHandle) (newVerts []dcel.VertexHandle, vertexMap map[dcel.EdgeHandle]dcel.VertexHandle, err error) {
	vertexMap = map[dcel.EdgeHandle]dcel.VertexHandle{}
	seen := map[dcel.EdgeHandle]bool{}

	for _, v := range inSet {
		for _, e := range g.VertexEdges(v) {
			twin := g.Twin(e)
			if seen[e] || seen[twin] {
				continue
			}
			dest := g.HalfEdge(twin).Origin
			if g.Vertex(dest).Status != dcel.StatusOut {
				continue
			}
			seen[e], seen[twin] = true, true

			face := g.HalfEdge(e).Face
			if face == dcel.NilFace {
				face = g.HalfEdge(twin).Face
			}
			if face == dcel.NilFace {
				continue
			}
			faceSite := g.Face(face).Site

			pointAt := func(t float64) dcel.Vec2 { return g.Point(e, t) }
			t, terr := position.OnEdge(pointAt, faceSite, s)
			if terr != nil {
				for _, created := range newVerts {
					g.RemoveVertex(created)
				}
				return nil, nil, terr
			}

			pos := g.Point(e, t)
			clearance := faceSite.DistanceTo(pos)
			nv := g.AddVertex(pos, clearance, dcel.TypeNormal)
			g.Vertex(nv).Status = dcel.StatusNew

			newVerts = append(newVerts, nv)
			vertexMap[e] = nv
			vertexMap[twin] = nv
		}
	}

	return newVerts, vertexMap, nil
}
