package dcel

// VertexStatus marks a vertex's role during the insertion currently in
// flight. Outside of an insertion every vertex must be StatusUndecided
// (spec.md §3 invariant 5).
type VertexStatus uint8

const (
	StatusUndecided VertexStatus = iota
	StatusIn
	StatusOut
	StatusNew
)

func (s VertexStatus) String() string {
	switch s {
	case StatusIn:
		return "IN"
	case StatusOut:
		return "OUT"
	case StatusNew:
		return "NEW"
	default:
		return "UNDECIDED"
	}
}

// VertexType records why a vertex exists, mirroring the teacher's
// BodyType-style small closed enum (actor/rigidbody.go).
type VertexType uint8

const (
	TypeOuter VertexType = iota
	TypeNormal
	TypePointSite
	TypeEndpoint
	TypeSepPoint
	TypeApex
	TypeSplit
)

// Vertex is a Voronoi vertex: a point equidistant, within tolerance,
// from every site whose face meets there.
type Vertex struct {
	Position  Vec2
	Clearance float64 // distance to the nearest site
	Status    VertexStatus
	Type      VertexType
	Index     int  // monotonically assigned, instance-local
	Edge      EdgeHandle // one outgoing half-edge from this vertex

	generation int
	alive      bool
}

// Degree returns the number of half-edges touching v, by walking the
// rotation starting at v.Edge.
func (g *Graph) Degree(v VertexHandle) int {
	return len(g.VertexEdges(v))
}
