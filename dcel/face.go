package dcel

// Incidence marks whether a face currently participates in an
// insertion's flood fill. Outside of an insertion every face must be
// NonIncident (spec.md §3 invariant 6).
type Incidence uint8

const (
	NonIncident Incidence = iota
	Incident
)

// Face is a region of the planar subdivision generated by one site.
type Face struct {
	OutEdge   EdgeHandle
	Site      Site
	Incidence Incidence

	alive bool
}

// FaceVertices collects the distinct vertices around f's boundary cycle, in
// cycle order.
func (g *Graph) FaceVertices(f FaceHandle) []VertexHandle {
	var out []VertexHandle
	g.Cycle(f, func(e EdgeHandle) {
		out = append(out, g.halfEdges[e].Origin)
	})
	return out
}

// FaceEdges collects every half-edge of f's boundary cycle, in order.
func (g *Graph) FaceEdges(f FaceHandle) []EdgeHandle {
	var out []EdgeHandle
	g.Cycle(f, func(e EdgeHandle) {
		out = append(out, e)
	})
	return out
}
