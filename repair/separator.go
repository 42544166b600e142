package repair

import (
	"github.com/planarfield/voronoi/dcel"
	"github.com/planarfield/voronoi/position"
)

// AddSeparator implements add_separator (spec.md §4.4 step 4): at a
// segment endpoint, a new vertex is placed at the site's own location
// (at) and two separator half-edge pairs are cast from it outward in
// direction and -direction, each finding where it meets f's existing
// boundary via a bracketed search over f's edges. Both crossings are
// spliced into f's cycle, cutting the point-site face f into two pieces
// along the chord through at — the arc that follows the forward
// crossing in f's cycle order, up to the backward crossing, keeps f's
// identity, and the arc from the backward crossing round to the forward
// crossing is reassigned to a fresh face carrying segmentSite, which the
// caller registers in its spatial index.
//
// ok is false when f's boundary does not yield two distinct crossings
// (for instance a degenerate, nearly collinear configuration the root
// finder cannot bracket); the caller then leaves f untouched.
func AddSeparator(g *dcel.Graph, f dcel.FaceHandle, at dcel.Vec2, direction dcel.Vec2, segmentSite dcel.Site) (dcel.VertexHandle, dcel.FaceHandle, bool) {
	eFwd, tFwd, okFwd := findCrossing(g, f, at, direction)
	backward := dcel.Vec2{-direction.X(), -direction.Y()}
	eBack, tBack, okBack := findCrossing(g, f, at, backward)
	if !okFwd || !okBack || eFwd == eBack {
		return dcel.NilVertex, dcel.NilFace, false
	}

	hitFwd := g.Point(eFwd, tFwd)
	hitBack := g.Point(eBack, tBack)

	nvFwd := subdivideEdge(g, eFwd, hitFwd, hitFwd.Sub(at).Len(), dcel.TypeSepPoint)
	nvBack := subdivideEdge(g, eBack, hitBack, hitBack.Sub(at).Len(), dcel.TypeSepPoint)
	eFwdCont := g.Vertex(nvFwd).Edge
	eBackCont := g.Vertex(nvBack).Edge

	endpoint := g.AddVertex(at, 0, dcel.TypeEndpoint)

	sepFwd, sepFwdTwin := g.AddEdgePair(dcel.TypeSeparator)
	g.HalfEdge(sepFwd).Origin = endpoint
	g.HalfEdge(sepFwdTwin).Origin = nvFwd

	sepBack, sepBackTwin := g.AddEdgePair(dcel.TypeSeparator)
	g.HalfEdge(sepBack).Origin = endpoint
	g.HalfEdge(sepBackTwin).Origin = nvBack

	// f keeps the arc running eFwdCont..eBack, closed off through the
	// chord endpoint<->nvBack and endpoint<->nvFwd.
	g.SetNext(eBack, sepBackTwin)
	g.SetNext(sepBackTwin, sepFwd)
	g.SetNext(sepFwd, eFwdCont)
	g.HalfEdge(sepBackTwin).Face = f
	g.HalfEdge(sepFwd).Face = f
	g.Face(f).OutEdge = eFwdCont
	g.Vertex(endpoint).Edge = sepFwd

	// The remaining arc, eBackCont..eFwd, is cut away into a new face
	// generated by the segment, closed off through the other half of
	// the chord.
	cutFace := g.AddFace(segmentSite, eBackCont)
	g.SetNext(eFwd, sepFwdTwin)
	g.SetNext(sepFwdTwin, sepBack)
	g.SetNext(sepBack, eBackCont)
	g.HalfEdge(sepFwdTwin).Face = cutFace
	g.HalfEdge(sepBack).Face = cutFace
	for e := eBackCont; ; e = g.Next(e) {
		g.HalfEdge(e).Face = cutFace
		if e == eFwd {
			break
		}
	}

	return endpoint, cutFace, true
}

// findCrossing scans f's boundary for the single edge whose two
// endpoints straddle the ray cast from at along dir, restricted to
// crossings ahead of at (not behind it), and brackets the exact
// crossing parameter with position.FindRoot — the same idiom
// FindSplitEdges/AddSplitVertex use for locating a line's crossing of a
// bisector edge.
func findCrossing(g *dcel.Graph, f dcel.FaceHandle, at, dir dcel.Vec2) (dcel.EdgeHandle, float64, bool) {
	side := func(p dcel.Vec2) float64 { return dcel.Cross2(dir, p.Sub(at)) }
	ahead := func(p dcel.Vec2) bool { return p.Sub(at).Dot(dir) > 0 }

	for _, e := range g.FaceEdges(f) {
		o, d := g.Endpoints(e)
		po, pd := g.Vertex(o).Position, g.Vertex(d).Position
		so, sd := side(po), side(pd)
		if (so > 0) == (sd > 0) {
			continue
		}
		if !ahead(po) && !ahead(pd) {
			continue
		}

		pointAt := func(t float64) dcel.Vec2 { return g.Point(e, t) }
		t, err := position.FindRoot(func(t float64) float64 { return side(pointAt(t)) }, 0, 1)
		if err != nil {
			continue
		}
		return e, t, true
	}

	return dcel.NilEdge, 0, false
}
