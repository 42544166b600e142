// Package position implements the vertex positioner and split-point
// root finder spec.md §6 lists as external collaborators, made concrete
// here so insertion can actually run end-to-end.
//
// The positioner solves, for three defining sites, the point equidistant
// from all three (and the common distance, the vertex's clearance
// radius). For three point sites this is the classical circumcenter
// closed form (grounded on the determinant construction in the pack's
// other Voronoi reference implementation). Mixed point/segment triples
// have no single closed form across all combinations, so the general
// path runs a Newton iteration on the two equidistance equations,
// in the same "iterate toward convergence with a bounded iteration count
// and an explicit tolerance" style as the teacher's gjk/epa packages.
package position

import (
	"errors"
	"math"

	"github.com/planarfield/voronoi/dcel"
)

// ErrFailed is returned when the positioner or the root finder cannot
// converge or has no solution (collinear point sites, or an interval
// whose ends do not differ in sign) (spec.md §7 PositionerFailed).
// Solutions are not checked against an expected region.
var ErrFailed = errors.New("position: failed to converge")

const (
	maxIterations  = 50
	tolerance      = 1e-9
	fdStep         = 1e-6
	maxNewtonReset = 4
)

// Position solves for the point equidistant from siteA, siteB and siteC,
// and the common distance (the new vertex's clearance radius). hint
// seeds the iterative solver (e.g. the seed vertex's position, or the
// midpoint of the edge the new vertex will sit on); a good hint is what
// keeps Newton's method inside its basin of convergence.
func Position(siteA, siteB, siteC dcel.Site, hint dcel.Vec2) (dcel.Vec2, float64, error) {
	if siteA.Kind() == dcel.SitePoint && siteB.Kind() == dcel.SitePoint && siteC.Kind() == dcel.SitePoint {
		a := siteA.(dcel.PointSite).Position
		b := siteB.(dcel.PointSite).Position
		c := siteC.(dcel.PointSite).Position
		return circumcenter(a, b, c)
	}
	return newtonSolve(siteA, siteB, siteC, hint)
}

// circumcenter returns the unique point equidistant from three
// non-collinear points, and that common distance.
func circumcenter(a, b, c dcel.Vec2) (dcel.Vec2, float64, error) {
	d := 2 * (a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y()))
	if math.Abs(d) < 1e-12 {
		return dcel.Vec2{}, 0, ErrFailed
	}

	aSq := a.X()*a.X() + a.Y()*a.Y()
	bSq := b.X()*b.X() + b.Y()*b.Y()
	cSq := c.X()*c.X() + c.Y()*c.Y()

	ux := (aSq*(b.Y()-c.Y()) + bSq*(c.Y()-a.Y()) + cSq*(a.Y()-b.Y())) / d
	uy := (aSq*(c.X()-b.X()) + bSq*(a.X()-c.X()) + cSq*(b.X()-a.X())) / d

	center := dcel.Vec2{ux, uy}
	return center, center.Sub(a).Len(), nil
}

// newtonSolve handles any triple involving at least one LineSite by
// driving the two residuals r1 = d(p,A)-d(p,B), r2 = d(p,B)-d(p,C)
// to zero with full Newton steps and a numerically estimated
// Jacobian (forward differences), the same "small bounded iteration,
// explicit epsilon" idiom as gjk.GJK's refinement loop.
func newtonSolve(siteA, siteB, siteC dcel.Site, hint dcel.Vec2) (dcel.Vec2, float64, error) {
	p := hint
	residual := func(p dcel.Vec2) (float64, float64) {
		return siteA.DistanceTo(p) - siteB.DistanceTo(p), siteB.DistanceTo(p) - siteC.DistanceTo(p)
	}

	for reset := 0; reset <= maxNewtonReset; reset++ {
		for i := 0; i < maxIterations; i++ {
			r1, r2 := residual(p)
			if math.Abs(r1) < tolerance && math.Abs(r2) < tolerance {
				return p, siteA.DistanceTo(p), nil
			}

			// Numerical Jacobian of (r1, r2) w.r.t. (x, y).
			px := dcel.Vec2{p.X() + fdStep, p.Y()}
			py := dcel.Vec2{p.X(), p.Y() + fdStep}
			r1x, r2x := residual(px)
			r1y, r2y := residual(py)

			j11 := (r1x - r1) / fdStep
			j12 := (r1y - r1) / fdStep
			j21 := (r2x - r2) / fdStep
			j22 := (r2y - r2) / fdStep

			det := j11*j22 - j12*j21
			if math.Abs(det) < 1e-14 {
				break // singular Jacobian; perturb and retry below
			}

			dx := (r1*j22 - r2*j12) / det
			dy := (r2*j11 - r1*j21) / det

			p = dcel.Vec2{p.X() - dx, p.Y() - dy}
		}
		// Didn't converge from this seed; nudge the hint and retry a
		// bounded number of times before giving up.
		p = dcel.Vec2{hint.X() + float64(reset+1)*1e-3, hint.Y() - float64(reset+1)*1e-3}
	}

	return dcel.Vec2{}, 0, ErrFailed
}

// OnEdge finds the parameter t in [0,1] on an edge where a third site s
// is equidistant from the edge's two bounding faces' sites, used when a
// NEW vertex must be placed exactly on an existing edge rather than
// solved from scratch (spec.md §6 position_on_edge). It brackets the
// in-circle-style residual on [0,1] and solves it with FindRoot's
// regula falsi.
func OnEdge(pointAt func(t float64) dcel.Vec2, faceSite, s dcel.Site) (float64, error) {
	f := func(t float64) float64 {
		p := pointAt(t)
		return s.DistanceTo(p) - faceSite.DistanceTo(p)
	}
	return FindRoot(f, 0, 1)
}
