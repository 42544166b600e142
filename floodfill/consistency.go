package floodfill

import "github.com/planarfield/voronoi/dcel"

// satisfiesC4 checks that the IN-vertices of f's boundary cycle form a
// single contiguous arc (spec.md §4.3 predicate C4). Called with one
// vertex already tentatively marked IN by accept; it walks the cycle
// once and counts the maximal runs of consecutive IN vertices, treating
// the cycle as circular (a run that touches both the first and last
// position is one run, not two).
func satisfiesC4(g *dcel.Graph, f dcel.FaceHandle) bool {
	verts := g.FaceVertices(f)
	n := len(verts)
	if n == 0 {
		return true
	}

	in := make([]bool, n)
	for i, v := range verts {
		in[i] = g.Vertex(v).Status == dcel.StatusIn
	}

	runs := 0
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		if in[i] && !in[prev] {
			runs++
		}
	}
	if runs == 0 {
		// Either no IN vertices, or every vertex is IN (one run that
		// wraps all the way around); satisfiesC5 rejects the latter.
		return true
	}
	return runs == 1
}

// satisfiesC5 checks that at least one vertex of f remains non-IN
// (spec.md §4.3 predicate C5): a face with every vertex accepted as IN
// would be wholly engulfed by the new site's region, which the repair
// step cannot express as a splice of a single new boundary path.
func satisfiesC5(g *dcel.Graph, f dcel.FaceHandle) bool {
	for _, v := range g.FaceVertices(f) {
		if g.Vertex(v).Status != dcel.StatusIn {
			return true
		}
	}
	return false
}
