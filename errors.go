package voronoi

import "errors"

// Error kinds for insertion failures, per spec.md §7.
var (
	// ErrInvalidSite is returned when an input point lies on or outside
	// the far circle or coincides with an existing point site, or when a
	// segment's endpoint handles are invalid or its endpoints coincide.
	// Segments are not tested for crossings with existing segments. The
	// diagram is left unchanged.
	ErrInvalidSite = errors.New("voronoi: invalid site")

	// ErrPredicateUndecidable is returned when no vertex of the seed
	// face has a positive in-circle predicate against the new site, so
	// the flood fill has no vertex to start from. The flood fill itself
	// does not detect stalled steps and never returns this error. Nothing
	// has been modified at that point; the diagram is left as it was.
	ErrPredicateUndecidable = errors.New("voronoi: flood fill predicate undecidable")

	// ErrPositionerFailed is returned when no seed face is found for the
	// new site, or when the root finder cannot place a NEW vertex on a
	// boundary edge. Positions are not checked against an expected
	// region. Status flags are rolled back and the NEW vertices created
	// so far are removed, leaving the diagram as it was.
	ErrPositionerFailed = errors.New("voronoi: positioner failed to converge")

	// ErrInvariantViolated is returned when the post-insertion checker
	// fails. Unlike the other three, this is not rolled back: it
	// indicates a bug, and the diagram is not guaranteed restorable.
	ErrInvariantViolated = errors.New("voronoi: post-insertion invariant violated")
)
