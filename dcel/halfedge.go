package dcel

// EdgeType records the kind of bisector curve a half-edge carries.
type EdgeType uint8

const (
	TypeLineEdge EdgeType = iota
	TypeParabola
	TypeSeparator
	TypeLineSite
	TypeNullEdge
)

// HalfEdge is one directed side of an edge pair. Origin is the vertex it
// starts from; Twin is the paired half-edge running the opposite
// direction on the other face; Next is the following half-edge around
// Face in CCW order.
//
// Straight edge types (LINE, SEPARATOR, LINESITE, NULL-EDGE) interpolate
// linearly between Origin and Twin.Origin. PARABOLA edges trace the true
// focus/directrix curve between a point site and a line site, derived
// live in Point from the two faces bordering the edge — ApexT is kept
// only as the diagnostic apex-parameter value repair.RepairFace computed
// when it created the edge (repair/bisector.go's apexParameterFor); it
// is no longer consulted when evaluating the curve.
type HalfEdge struct {
	Origin VertexHandle
	Face   FaceHandle
	Type   EdgeType
	ApexT  float64

	twin  EdgeHandle
	next  EdgeHandle
	alive bool
}

// Point evaluates the half-edge's parametric curve at t in [0,1].
// Straight edge types interpolate linearly between endpoints. PARABOLA
// edges are bowed by the real focus (the adjacent point site) and
// directrix (the adjacent line site), not by a control-point blend, so
// every interior point genuinely satisfies the equidistance condition a
// Voronoi bisector must — see parabolaPoint.
func (g *Graph) Point(e EdgeHandle, t float64) Vec2 {
	he := &g.halfEdges[e]
	p0 := g.vertices[he.Origin].Position
	p1 := g.vertices[g.halfEdges[he.twin].Origin].Position

	if t <= 0 {
		return p0
	}
	if t >= 1 {
		return p1
	}
	if he.Type != TypeParabola {
		return Vec2{
			p0.X() + (p1.X()-p0.X())*t,
			p0.Y() + (p1.Y()-p0.Y())*t,
		}
	}

	focus, directrix, ok := g.parabolaSites(e)
	if !ok {
		return Vec2{
			p0.X() + (p1.X()-p0.X())*t,
			p0.Y() + (p1.Y()-p0.Y())*t,
		}
	}
	return parabolaPoint(focus.Position, directrix, p0, p1, t)
}

// parabolaSites identifies the point-site focus and line-site directrix
// bordering a PARABOLA half-edge, by inspecting the Site carried by each
// of the edge's two adjacent faces (repair.RepairFace always splices a
// PARABOLA edge between exactly one point-site face and one line-site
// face — repair/bisector.go's bisectorEdgeType).
func (g *Graph) parabolaSites(e EdgeHandle) (PointSite, LineSite, bool) {
	he := &g.halfEdges[e]
	twin := &g.halfEdges[he.twin]

	var focus PointSite
	var directrix LineSite
	var haveFocus, haveDirectrix bool

	for _, f := range [2]FaceHandle{he.Face, twin.Face} {
		if f == NilFace {
			continue
		}
		switch s := g.faces[f].Site.(type) {
		case PointSite:
			focus, haveFocus = s, true
		case LineSite:
			directrix, haveDirectrix = s, true
		}
	}
	return focus, directrix, haveFocus && haveDirectrix
}

// parabolaPoint evaluates the parabola equidistant from focus and the
// directrix line site at parameter t. p0 and p1 are the edge's actual
// endpoints (already known to lie on the curve, placed there by the
// in-circle predicate and vertex positioner); t=0 and t=1 return them
// exactly, and interior t values are found by linearly interpolating
// each endpoint's own coordinate along the directrix and evaluating the
// parabola's closed form at that point.
//
// Working in the local frame with origin Q (focus's orthogonal
// projection onto the directrix), tangential axis d (the directrix's
// unit direction) and normal axis n, the focus sits at local coordinates
// (0, h) where h is its signed perpendicular distance from the
// directrix. A point at local (x, y) is equidistant from the focus and
// the line exactly when x² + (y-h)² = y², i.e. y = (x²+h²)/(2h).
func parabolaPoint(focus Vec2, directrix LineSite, p0, p1 Vec2, t float64) Vec2 {
	d := directrix.Direction()
	n := directrix.Normal

	toFocus := Vec2{focus.X() - directrix.Endpoint1.X(), focus.Y() - directrix.Endpoint1.Y()}
	h := toFocus.X()*n.X() + toFocus.Y()*n.Y()
	if h < 1e-12 && h > -1e-12 {
		// Focus lies on the directrix: no real parabola (shouldn't occur
		// for a valid segment/point pair), fall back to the chord.
		return Vec2{
			p0.X() + (p1.X()-p0.X())*t,
			p0.Y() + (p1.Y()-p0.Y())*t,
		}
	}

	along := toFocus.X()*d.X() + toFocus.Y()*d.Y()
	qx := directrix.Endpoint1.X() + d.X()*along
	qy := directrix.Endpoint1.Y() + d.Y()*along

	localX := func(p Vec2) float64 {
		return (p.X()-qx)*d.X() + (p.Y()-qy)*d.Y()
	}

	x0, x1 := localX(p0), localX(p1)
	x := x0 + (x1-x0)*t
	y := (x*x + h*h) / (2 * h)

	return Vec2{
		qx + x*d.X() + y*n.X(),
		qy + x*d.Y() + y*n.Y(),
	}
}

// Endpoints returns the origin and destination vertex handles of e.
func (g *Graph) Endpoints(e EdgeHandle) (VertexHandle, VertexHandle) {
	he := &g.halfEdges[e]
	return he.Origin, g.halfEdges[he.twin].Origin
}
