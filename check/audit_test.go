package check

import (
	"testing"

	"github.com/planarfield/voronoi/dcel"
)

// triangle builds three mutually-visible faces meeting at one vertex
// equidistant from all three point sites, the minimal structure that
// should pass every check.
func triangle(t *testing.T) *dcel.Graph {
	t.Helper()
	g := dcel.NewGraph()

	sites := []dcel.PointSite{
		{Position: dcel.Vec2{0, 1}},
		{Position: dcel.Vec2{-1, -1}},
		{Position: dcel.Vec2{1, -1}},
	}
	center := dcel.Vec2{0, -0.25} // circumcenter of (0,1),(-1,-1),(1,-1)
	clearance := sites[0].DistanceTo(center)

	v := g.AddVertex(center, clearance, dcel.TypeNormal)

	edges := make([]dcel.EdgeHandle, 3)
	twins := make([]dcel.EdgeHandle, 3)
	for i := 0; i < 3; i++ {
		e, tw := g.AddEdgePair(dcel.TypeLineEdge)
		edges[i], twins[i] = e, tw
	}
	// All three edges emanate from the single shared vertex; this
	// isn't a full bounded diagram (no outer ring), but it's enough to
	// exercise the equidistance and twin-consistency checks directly.
	for i := 0; i < 3; i++ {
		g.HalfEdge(edges[i]).Origin = v
		g.SetNext(edges[i], twins[(i+2)%3])
		g.SetNext(twins[i], edges[(i+1)%3])
	}
	g.Vertex(v).Edge = edges[0]

	for i := 0; i < 3; i++ {
		f := g.AddFace(sites[i], edges[i])
		g.HalfEdge(edges[i]).Face = f
		g.HalfEdge(twins[(i+2)%3]).Face = f
	}

	return g
}

func TestValidateTwinConsistencyPassesOnWellFormedGraph(t *testing.T) {
	g := triangle(t)
	if err := validateTwinConsistency(g); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestValidateStatusResetFailsOnLeftoverIncidence(t *testing.T) {
	g := triangle(t)
	for _, f := range g.AllFaces() {
		g.Face(f).Incidence = dcel.Incident
		break
	}
	if err := validateStatusReset(g); err == nil {
		t.Fatalf("expected failure for a face left INCIDENT")
	}
}

func TestValidateVertexEquidistancePassesOnEquidistantVertex(t *testing.T) {
	g := triangle(t)
	if err := validateVertexEquidistance(g); err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestValidateVertexEquidistanceCatchesDrift(t *testing.T) {
	g := triangle(t)
	for _, v := range g.AllVertices() {
		g.Vertex(v).Clearance += 1.0
	}
	if err := validateVertexEquidistance(g); err == nil {
		t.Fatalf("expected failure after perturbing clearance")
	}
}
