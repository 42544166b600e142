package predicate

import "github.com/planarfield/voronoi/dcel"

// InCircle evaluates the in-circle predicate of vertex v against the
// candidate site s (spec.md §4.6). v.Clearance already holds the
// distance from v to every site whose face meets at v (spec.md §3
// invariant 4); the predicate is simply how much closer s is than that
// shared distance:
//
//	positive  -> s is strictly closer than v's defining sites (v is
//	             inside the new site's region of influence, a candidate
//	             to delete)
//	negative  -> s is strictly farther (v survives)
//	zero      -> v lies exactly on the new bisector
//
// Point-point-point in-circle tests are classically a 3x3 determinant;
// here the determinant collapses to this subtraction because Clearance
// is already the common circumradius distance rather than three raw
// site coordinates, which is the representation the half-edge graph
// carries (spec.md §3). Line sites reuse the same formula against
// LineSite.DistanceTo, the "shifted site construction" spec.md §4.6
// mentions for segment bisectors.
func InCircle(g *dcel.Graph, v dcel.VertexHandle, s dcel.Site) float64 {
	vertex := g.Vertex(v)
	return vertex.Clearance - s.DistanceTo(vertex.Position)
}
