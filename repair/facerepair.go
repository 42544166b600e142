package repair

import "github.com/planarfield/voronoi/dcel"

// EdgeData locates the IN-arc boundary crossings on one incident face's
// cycle (spec.md §4.5 find_edge_data): V1Edge is the OUT→IN half-edge
// whose NEW vertex starts the replacement path; V2Edge is the IN→OUT
// half-edge whose NEW vertex ends it.
type EdgeData struct {
	V1Edge dcel.EdgeHandle
	V1     dcel.VertexHandle
	V2Edge dcel.EdgeHandle
	V2     dcel.VertexHandle
}

// findEdgeData implements find_edge_data: it walks f's boundary cycle
// once, looking for the single OUT→IN transition and the single IN→OUT
// transition that C4 guarantees exist (as a single contiguous arc).
// Returns ok=false if f was never actually touched by the fill (no
// transition found), which repair_face treats as a no-op.
func findEdgeData(g *dcel.Graph, f dcel.FaceHandle, vertexMap map[dcel.EdgeHandle]dcel.VertexHandle) (EdgeData, bool) {
	edges := g.FaceEdges(f)
	n := len(edges)
	if n == 0 {
		return EdgeData{}, false
	}

	var v1Edge, v2Edge dcel.EdgeHandle = dcel.NilEdge, dcel.NilEdge

	for i, e := range edges {
		origin := g.HalfEdge(e).Origin
		dest := g.HalfEdge(edges[(i+1)%n]).Origin
		originIn := g.Vertex(origin).Status == dcel.StatusIn
		destIn := g.Vertex(dest).Status == dcel.StatusIn

		if !originIn && destIn {
			v1Edge = e
		}
		if originIn && !destIn {
			v2Edge = e
		}
	}

	if v1Edge == dcel.NilEdge || v2Edge == dcel.NilEdge {
		return EdgeData{}, false
	}

	v1, ok1 := vertexMap[v1Edge]
	v2, ok2 := vertexMap[v2Edge]
	if !ok1 || !ok2 {
		return EdgeData{}, false
	}

	return EdgeData{V1Edge: v1Edge, V1: v1, V2Edge: v2Edge, V2: v2}, true
}

// RepairFace implements repair_face for one INCIDENT face f (spec.md
// §4.5). It truncates the two boundary-crossing edges at their NEW
// vertices, splices a fresh bisector edge (f's site vs. s) between them
// to replace the deleted IN arc, and returns the twin half-edge of that
// new bisector — the side that will become part of s's new face
// boundary, for the caller to chain together across every incident
// face once all of them have been repaired.
//
// ok is false when f was never actually crossed by the fill (for
// instance a face only ever reached via mark_adjacent_faces but whose
// vertices all stayed OUT because the seed was elsewhere); the caller
// skips such faces.
func RepairFace(g *dcel.Graph, f dcel.FaceHandle, s dcel.Site, vertexMap map[dcel.EdgeHandle]dcel.VertexHandle) (newFaceEdge dcel.EdgeHandle, ok bool) {
	data, ok := findEdgeData(g, f, vertexMap)
	if !ok {
		return dcel.NilEdge, false
	}

	// Truncate the OUT->IN edge so it ends at V1 instead of the
	// deleted IN vertex: its destination is twin.Origin.
	g.HalfEdge(g.Twin(data.V1Edge)).Origin = data.V1
	// Truncate the IN->OUT edge so it starts at V2 instead of the
	// deleted IN vertex.
	g.HalfEdge(data.V2Edge).Origin = data.V2
	g.Vertex(data.V2).Edge = data.V2Edge

	faceSite := g.Face(f).Site
	typ := bisectorEdgeType(faceSite, s)

	newE, newETwin := g.AddEdgePair(typ)
	g.HalfEdge(newE).Origin = data.V1
	g.HalfEdge(newE).Face = f
	g.HalfEdge(newETwin).Origin = data.V2

	if typ == dcel.TypeParabola {
		apexT := apexParameterFor(g, newE, faceSite, s)
		g.HalfEdge(newE).ApexT = apexT
		g.HalfEdge(newETwin).ApexT = 1 - apexT
	}

	g.SetNext(data.V1Edge, newE)
	g.SetNext(newE, data.V2Edge)
	g.Vertex(data.V1).Edge = newE

	g.Face(f).OutEdge = data.V1Edge

	return newETwin, true
}

// ChainNewFace stitches the per-face newETwin edges (each running from
// one incident face's V2 to its V1) into the new site's single face
// cycle, by following each edge's destination vertex to whichever other
// edge in the set originates there, and assigns the resulting cycle to
// newFace.
func ChainNewFace(g *dcel.Graph, newFace dcel.FaceHandle, edges []dcel.EdgeHandle) {
	byOrigin := make(map[dcel.VertexHandle]dcel.EdgeHandle, len(edges))
	for _, e := range edges {
		g.HalfEdge(e).Face = newFace
		byOrigin[g.HalfEdge(e).Origin] = e
	}

	for _, e := range edges {
		_, dest := g.Endpoints(e)
		if next, ok := byOrigin[dest]; ok {
			g.SetNext(e, next)
		}
	}

	if len(edges) > 0 {
		g.Face(newFace).OutEdge = edges[0]
	}
}
