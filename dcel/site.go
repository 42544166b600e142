package dcel

import "math"

// SiteKind distinguishes the two site variants.
type SiteKind int

const (
	SitePoint SiteKind = iota
	SiteLine
)

// Site is the polymorphic generator of a face: either a point or a
// straight line segment. Modeled as a tagged variant dispatched through
// an interface (mirroring actor.ShapeInterface's Box/Sphere/Plane
// dispatch) rather than a pointer-to-base hierarchy, per spec.md §9.
type Site interface {
	Kind() SiteKind
	// DistanceTo returns the Euclidean distance from p to the site (to
	// its nearest point, for a segment).
	DistanceTo(p Vec2) float64
	// ApexParameter returns a parameter value on edge e, stored as a
	// PARABOLA edge's ApexT. For a LineSite it is the parameter at which
	// the straight chord between e's endpoints comes closest to the
	// segment's supporting line (where the chord crosses that line, or
	// the nearer endpoint when it does not); for a PointSite it is
	// always 0.5 (the accessor stays total for dispatch simplicity).
	ApexParameter(g *Graph, e EdgeHandle) float64
	// InRegion reports whether p lies in the site's region of
	// definition: always true for a point, and true only within the
	// infinite slab perpendicular to the segment for a LineSite.
	InRegion(p Vec2) bool
}

// PointSite is a site generating a face around a single point.
type PointSite struct {
	Position Vec2
}

func (s PointSite) Kind() SiteKind { return SitePoint }

func (s PointSite) DistanceTo(p Vec2) float64 {
	return p.Sub(s.Position).Len()
}

func (s PointSite) ApexParameter(g *Graph, e EdgeHandle) float64 {
	return 0.5
}

func (s PointSite) InRegion(p Vec2) bool {
	return true
}

// LineSite is a site generating a face around a straight segment
// between two previously inserted point sites, with a normal oriented
// so that Normal points toward the segment's left side (left of travel
// from Endpoint1 to Endpoint2).
type LineSite struct {
	Endpoint1 Vec2
	Endpoint2 Vec2
	Normal    Vec2 // unit normal, left-hand side of Endpoint1->Endpoint2
}

// NewLineSite builds a LineSite between a and b with its normal derived
// from the segment direction (rotated 90° CCW, i.e. pointing left of
// travel from a to b).
func NewLineSite(a, b Vec2) LineSite {
	dir := b.Sub(a)
	length := dir.Len()
	if length < 1e-12 {
		return LineSite{Endpoint1: a, Endpoint2: b}
	}
	n := Vec2{-dir.Y() / length, dir.X() / length}
	return LineSite{Endpoint1: a, Endpoint2: b, Normal: n}
}

func (s LineSite) Kind() SiteKind { return SiteLine }

func (s LineSite) Length() float64 {
	return s.Endpoint2.Sub(s.Endpoint1).Len()
}

func (s LineSite) Direction() Vec2 {
	d := s.Endpoint2.Sub(s.Endpoint1)
	l := d.Len()
	if l < 1e-12 {
		return Vec2{1, 0}
	}
	return Vec2{d.X() / l, d.Y() / l}
}

// DistanceTo returns the distance from p to the closest point on the
// segment (clamped projection, not the infinite line).
func (s LineSite) DistanceTo(p Vec2) float64 {
	d := s.Endpoint2.Sub(s.Endpoint1)
	l2 := d.Dot(d)
	if l2 < 1e-18 {
		return p.Sub(s.Endpoint1).Len()
	}
	t := p.Sub(s.Endpoint1).Dot(d) / l2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	proj := Vec2{s.Endpoint1.X() + d.X()*t, s.Endpoint1.Y() + d.Y()*t}
	return p.Sub(proj).Len()
}

// InRegion reports whether p projects inside [0,1] along the segment,
// i.e. lies in the infinite slab perpendicular to the segment.
func (s LineSite) InRegion(p Vec2) bool {
	d := s.Endpoint2.Sub(s.Endpoint1)
	l2 := d.Dot(d)
	if l2 < 1e-18 {
		return false
	}
	t := p.Sub(s.Endpoint1).Dot(d) / l2
	return t >= 0 && t <= 1
}

// ApexParameter locates the parameter on e closest to the line through
// the segment, by projecting e's two endpoints onto the segment's
// normal and finding where that linear function of t crosses zero,
// clamped to [0,1].
func (s LineSite) ApexParameter(g *Graph, e EdgeHandle) float64 {
	origin, dest := g.Endpoints(e)
	p0 := g.Vertex(origin).Position
	p1 := g.Vertex(dest).Position

	signedDist := func(p Vec2) float64 {
		return p.Sub(s.Endpoint1).Dot(s.Normal)
	}
	d0, d1 := signedDist(p0), signedDist(p1)
	denom := d0 - d1
	if math.Abs(denom) < 1e-12 {
		return 0.5
	}
	t := d0 / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// SignedDistanceToLine returns the signed distance from p to the
// infinite line through the segment's two endpoints (positive on the
// Normal side), used by the split-vertex root finder.
func (s LineSite) SignedDistanceToLine(p Vec2) float64 {
	return p.Sub(s.Endpoint1).Dot(s.Normal)
}
