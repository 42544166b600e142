// Package floodfill implements augment_vertex_set (spec.md §4.3): the
// delete-region flood fill that grows the set of IN (to-be-deleted)
// vertices outward from a seed, subject to the C4/C5 topological
// consistency predicates, ordered by the in-circle predicate's
// confidence magnitude via package predicate's priority queue.
//
// The expand-while-checking-a-frontier-predicate shape follows the
// teacher's epa package: EPA grows a polytope one support point at a
// time, always picking the currently-best (closest) candidate off a
// priority structure and stopping on a convergence/degeneracy check;
// here the frontier grows a vertex set instead of a polytope, and the
// "convergence check" is the C4/C5 pair.
package floodfill

import (
	"github.com/planarfield/voronoi/dcel"
	"github.com/planarfield/voronoi/predicate"
)

// AugmentVertexSet grows the IN-set starting from seed, which the
// caller (find_seed_vertex, spec.md §4.2 step 2) has already marked
// dcel.StatusIn. It returns every vertex accepted as IN, in acceptance
// order (v0 in the spec's terms), and every face marked INCIDENT along
// the way.
func AugmentVertexSet(g *dcel.Graph, s dcel.Site, seed dcel.VertexHandle) (inSet []dcel.VertexHandle, incidentFaces []dcel.FaceHandle) {
	q := predicate.NewQueue()
	queued := map[dcel.VertexHandle]bool{}

	inSet = append(inSet, seed)
	incidentFaces = markAdjacentFaces(g, seed, incidentFaces)
	enqueueUndecidedNeighbors(g, s, seed, q, queued)

	for q.Len() > 0 {
		item, _ := q.Pop()
		v := item.Vertex

		if g.Vertex(v).Status != dcel.StatusUndecided {
			// Resolved already while it sat queued behind a
			// higher-confidence decision elsewhere on its frontier.
			continue
		}

		if !accept(g, v) {
			g.Vertex(v).Status = dcel.StatusOut
			continue
		}

		inSet = append(inSet, v)
		incidentFaces = markAdjacentFaces(g, v, incidentFaces)
		enqueueUndecidedNeighbors(g, s, v, q, queued)
	}

	return inSet, incidentFaces
}

// accept tentatively marks v IN and checks C4/C5 across every face
// incident to it; it leaves v IN and returns true if both hold, or
// restores v to UNDECIDED and returns false otherwise.
func accept(g *dcel.Graph, v dcel.VertexHandle) bool {
	g.Vertex(v).Status = dcel.StatusIn

	for _, f := range g.VertexFaces(v) {
		if !satisfiesC4(g, f) || !satisfiesC5(g, f) {
			g.Vertex(v).Status = dcel.StatusUndecided
			return false
		}
	}
	return true
}

func enqueueUndecidedNeighbors(g *dcel.Graph, s dcel.Site, v dcel.VertexHandle, q *predicate.Queue, queued map[dcel.VertexHandle]bool) {
	for _, u := range g.Neighbors(v) {
		if queued[u] || g.Vertex(u).Status != dcel.StatusUndecided {
			continue
		}
		q.Push(u, predicate.InCircle(g, u, s))
		queued[u] = true
	}
}

// markAdjacentFaces implements mark_adjacent_faces: every face incident
// to v is marked INCIDENT and appended to faces if this is the first
// time it's been touched this insertion.
func markAdjacentFaces(g *dcel.Graph, v dcel.VertexHandle, faces []dcel.FaceHandle) []dcel.FaceHandle {
	for _, f := range g.VertexFaces(v) {
		face := g.Face(f)
		if face.Incidence == dcel.NonIncident {
			face.Incidence = dcel.Incident
			faces = append(faces, f)
		}
	}
	return faces
}
