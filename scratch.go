package voronoi

import "github.com/planarfield/voronoi/dcel"

// scratch holds the per-insertion working state owned by the diagram:
// incident faces, v0 and the vertex map. insertSite replaces these
// fields with the values the flood fill and AddVertices return, and
// resets them on every exit path. There is no modified-vertices list;
// rollbackStatus sweeps the whole graph instead.
type scratch struct {
	incidentFaces []dcel.FaceHandle
	v0            []dcel.VertexHandle // the accepted IN-set, in acceptance order
	vertexMap     map[dcel.EdgeHandle]dcel.VertexHandle
}

func newScratch() *scratch {
	return &scratch{vertexMap: make(map[dcel.EdgeHandle]dcel.VertexHandle)}
}

// reset releases every field for reuse by the next insertion, called
// on every exit path including failure (spec.md §5).
func (s *scratch) reset() {
	s.incidentFaces = s.incidentFaces[:0]
	s.v0 = s.v0[:0]
	clear(s.vertexMap)
}
