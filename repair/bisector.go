package repair

import "github.com/planarfield/voronoi/dcel"

// bisectorEdgeType classifies the new edge separating faceSite's region
// from s's region, per the glossary's bisector-kind table: point-point
// bisects to a line, point-segment to a parabola, segment-segment to a
// line.
func bisectorEdgeType(faceSite, s dcel.Site) dcel.EdgeType {
	if faceSite.Kind() == dcel.SitePoint && s.Kind() == dcel.SitePoint {
		return dcel.TypeLineEdge
	}
	if faceSite.Kind() == dcel.SiteLine && s.Kind() == dcel.SiteLine {
		return dcel.TypeLineEdge
	}
	return dcel.TypeParabola
}

// apexParameterFor computes the ApexT to store on a newly created
// parabola edge, deferring to whichever of the two sites is the LineSite
// (ApexParameter is only meaningful relative to a segment's directrix).
func apexParameterFor(g *dcel.Graph, e dcel.EdgeHandle, faceSite, s dcel.Site) float64 {
	if faceSite.Kind() == dcel.SiteLine {
		return faceSite.ApexParameter(g, e)
	}
	return s.ApexParameter(g, e)
}
