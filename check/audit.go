// Package check implements the post-insertion sanity auditor spec.md §6
// calls the checker: is_valid(diagram) invoked after every insertion in
// debug mode, surfacing an InvariantViolated error (spec.md §7) the
// moment any structural guarantee breaks.
//
// It is organized the way sksmith-conway/conway/validation.go organizes
// its polyhedron checks: one small validator per concern, aggregated by
// a single top-level entry point. Unlike that package it returns plain
// errors via fmt.Errorf rather than a custom error type, following the
// teacher's own error idiom (epa.EPA, PolytopeBuilder.BuildInitialFaces)
// rather than inventing a ValidationError type this repo has no other
// use for.
package check

import (
	"fmt"
	"math"
	"sync"

	"github.com/planarfield/voronoi/dcel"
)

const clearanceTolerance = 1e-6

// View is the read-only set of queries the checker needs, matching
// spec.md §9's "friend-style checker access... define the checker
// against a read-only view trait that exposes the same queries the
// internal code uses" — satisfied directly by *dcel.Graph here, since
// every method it calls is already a plain query, not a privileged
// hatch.
type View interface {
	NumVertices() int
	NumHalfEdges() int
	NumFaces() int
	Vertex(v dcel.VertexHandle) *dcel.Vertex
	HalfEdge(e dcel.EdgeHandle) *dcel.HalfEdge
	Face(f dcel.FaceHandle) *dcel.Face
	Twin(e dcel.EdgeHandle) dcel.EdgeHandle
	Next(e dcel.EdgeHandle) dcel.EdgeHandle
	Point(e dcel.EdgeHandle, t float64) dcel.Vec2
	Endpoints(e dcel.EdgeHandle) (dcel.VertexHandle, dcel.VertexHandle)
	AllVertices() []dcel.VertexHandle
	AllHalfEdges() []dcel.EdgeHandle
	AllFaces() []dcel.FaceHandle
}

// ValidateComplete runs every check and returns the first failure, in
// the same fixed order as spec.md §8's invariant list.
func ValidateComplete(g View) error {
	if err := validateTwinConsistency(g); err != nil {
		return err
	}
	if err := validateStatusReset(g); err != nil {
		return err
	}
	if err := validateEulerCharacteristic(g); err != nil {
		return err
	}
	if err := validateVertexEquidistance(g); err != nil {
		return err
	}
	if err := validateEdgeMidpointNearestSite(g); err != nil {
		return err
	}
	return nil
}

// validateTwinConsistency checks that every half-edge's twin points
// back to it, and that following next pointers around any face returns
// to the start within the number of live half-edges.
func validateTwinConsistency(g View) error {
	for _, e := range g.AllHalfEdges() {
		twin := g.Twin(e)
		if g.Twin(twin) != e {
			return fmt.Errorf("check: half-edge %d's twin %d does not point back (got %d)", e, twin, g.Twin(twin))
		}
		if g.Next(e) == dcel.NilEdge {
			return fmt.Errorf("check: half-edge %d has a nil next pointer", e)
		}
	}
	limit := g.NumHalfEdges()
	for _, f := range g.AllFaces() {
		start := g.Face(f).OutEdge
		e := start
		for steps := 0; start != dcel.NilEdge; steps++ {
			if e = g.Next(e); e == start {
				break
			}
			if e == dcel.NilEdge || steps >= limit {
				return fmt.Errorf("check: face %d's next chain does not return to half-edge %d", f, start)
			}
		}
	}
	return nil
}

// validateStatusReset checks that every vertex is UNDECIDED and every
// face is NONINCIDENT between insertions (spec.md §3 invariants 5-6).
func validateStatusReset(g View) error {
	for _, v := range g.AllVertices() {
		if g.Vertex(v).Status != dcel.StatusUndecided {
			return fmt.Errorf("check: vertex %d left in status %s after insertion", v, g.Vertex(v).Status)
		}
	}
	for _, f := range g.AllFaces() {
		if g.Face(f).Incidence != dcel.NonIncident {
			return fmt.Errorf("check: face %d left INCIDENT after insertion", f)
		}
	}
	return nil
}

// validateEulerCharacteristic checks V - E/2 + F = 2 (spec.md §8), where
// F also counts the unbounded region outside the far circle, which has
// no Face record of its own.
func validateEulerCharacteristic(g View) error {
	v := g.NumVertices()
	e := g.NumHalfEdges() / 2
	f := g.NumFaces() + 1
	if euler := v - e + f; euler != 2 {
		return fmt.Errorf("check: Euler characteristic V(%d) - E(%d) + F(%d) = %d, want 2", v, e, f, euler)
	}
	return nil
}

// validateVertexEquidistance checks that every vertex is equidistant,
// within tolerance, from every site whose face meets there (spec.md §8).
func validateVertexEquidistance(g View) error {
	for _, v := range g.AllVertices() {
		vertex := g.Vertex(v)
		if vertex.Type == dcel.TypeOuter {
			continue
		}

		seen := map[dcel.FaceHandle]bool{}
		var edges []dcel.EdgeHandle
		start := vertex.Edge
		if start == dcel.NilEdge {
			continue
		}
		e := start
		for {
			edges = append(edges, e)
			e = g.Next(g.Twin(e))
			if e == start || e == dcel.NilEdge {
				break
			}
		}

		for _, he := range edges {
			f := g.HalfEdge(he).Face
			if f == dcel.NilFace || seen[f] {
				continue
			}
			seen[f] = true
			dist := g.Face(f).Site.DistanceTo(vertex.Position)
			if math.Abs(dist-vertex.Clearance) > clearanceTolerance {
				return fmt.Errorf("check: vertex %d clearance %.9f disagrees with face %d distance %.9f", v, vertex.Clearance, f, dist)
			}
		}
	}
	return nil
}

// validateEdgeMidpointNearestSite checks that the midpoint of every
// edge is closer to its two adjacent face sites than to any third site
// (spec.md §8). O(E*F); intended for debug-mode use on modest diagrams,
// not a hot path. The edge list is partitioned across workers via
// parallelTask since each edge's check is independent of every other.
func validateEdgeMidpointNearestSite(g View) error {
	faces := g.AllFaces()
	edges := g.AllHalfEdges()

	var mu sync.Mutex
	var firstErr error

	parallelTask(defaultWorkers(), len(edges), func(start, end int) {
		for _, e := range edges[start:end] {
			f := g.HalfEdge(e).Face
			if f == dcel.NilFace {
				continue
			}
			mid := g.Point(e, 0.5)
			ownDist := g.Face(f).Site.DistanceTo(mid)

			for _, other := range faces {
				if other == f {
					continue
				}
				d := g.Face(other).Site.DistanceTo(mid)
				if d < ownDist-clearanceTolerance {
					err := fmt.Errorf("check: edge %d midpoint is %.9f from face %d's site but only %.9f from face %d's site", e, ownDist, f, d, other)
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					break
				}
			}
		}
	})

	return firstErr
}
