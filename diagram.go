// Package voronoi implements an incrementally-maintained planar Voronoi
// diagram over point and line-segment sites, backed by a half-edge
// graph (package dcel).
package voronoi

import (
	"fmt"
	"math"

	"github.com/planarfield/voronoi/check"
	"github.com/planarfield/voronoi/dcel"
	"github.com/planarfield/voronoi/floodfill"
	"github.com/planarfield/voronoi/predicate"
	"github.com/planarfield/voronoi/repair"
)

// Version identifies the diagram engine's behavior revision, bumped
// whenever the insertion protocol changes in an observable way.
const Version = "0.1.0"

// Diagram is an incremental planar Voronoi diagram. Point and line
// sites are inserted one at a time; each insertion either commits an
// update or, when it fails with ErrInvalidSite, ErrPredicateUndecidable
// or ErrPositionerFailed, leaves the diagram as it was. ErrInvariantViolated
// is reported after the update has been applied and is not rolled back.
type Diagram struct {
	graph     *dcel.Graph
	grid      *FaceGrid
	farRadius float64

	// Debug, when true, runs check.ValidateComplete after every
	// successful insertion. Off by default: the edge-midpoint sweep
	// inside it is O(edges*faces) and is meant for development, not
	// production use of the diagram.
	Debug bool

	Events  Events
	scratch *scratch

	numPointSites    int
	numLineSites     int
	numSplitVertices int

	pointPositions []dcel.Vec2
	pointFaces     []dcel.FaceHandle
}

// New builds a diagram bounded by farRadius (no site or segment
// endpoint may lie on or outside this radius from the origin) with a
// spatial index sized for roughly numCells buckets.
func New(farRadius float64, numCells int) *Diagram {
	d := &Diagram{
		graph:     dcel.NewGraph(),
		grid:      NewFaceGrid(farRadius/8, numCells),
		farRadius: farRadius,
		Events:    NewEvents(),
		scratch:   newScratch(),
	}
	d.init()
	return d
}

// init bootstraps the diagram with three outer generator sites placed
// well outside farRadius, 120 degrees apart. Their three bisectors
// meet at the origin (by symmetry, the circumcenter of three
// equally-spaced points centered on the origin IS the origin) and cap
// off at three vertices on the far circle, producing three triangular
// faces that tile the bounded disk before any real site is inserted.
//
// There is no original-source reference for this bootstrap (the
// retrieved original_source/ pack carries no code, only an index
// stub), so this follows the standard incremental-Voronoi convention
// of seeding with distant dummy generators rather than a literal port.
func (d *Diagram) init() {
	const outerScale = 10.0
	outerSites := make([]dcel.PointSite, 3)
	for i := 0; i < 3; i++ {
		theta := (float64(i)*120 + 60) * math.Pi / 180
		outerSites[i] = dcel.PointSite{Position: dcel.Vec2{
			outerScale * d.farRadius * math.Cos(theta),
			outerScale * d.farRadius * math.Sin(theta),
		}}
	}

	center := dcel.Vec2{0, 0}
	centerClearance := outerSites[0].DistanceTo(center)
	cv := d.graph.AddVertex(center, centerClearance, dcel.TypeOuter)

	var ov [3]dcel.VertexHandle
	for i := 0; i < 3; i++ {
		theta := float64(i) * 120 * math.Pi / 180
		pos := dcel.Vec2{d.farRadius * math.Cos(theta), d.farRadius * math.Sin(theta)}
		clearance := outerSites[i].DistanceTo(pos)
		ov[i] = d.graph.AddVertex(pos, clearance, dcel.TypeOuter)
	}

	faces := make([]dcel.FaceHandle, 3)
	for i := 0; i < 3; i++ {
		faces[i] = d.graph.AddFace(outerSites[i], dcel.NilEdge)
	}

	spokes := make([]dcel.EdgeHandle, 3)
	spokeTwins := make([]dcel.EdgeHandle, 3)
	for i := 0; i < 3; i++ {
		e, t := d.graph.AddEdgePair(dcel.TypeLineEdge)
		d.graph.HalfEdge(e).Origin = cv
		d.graph.HalfEdge(t).Origin = ov[i]
		spokes[i], spokeTwins[i] = e, t
	}

	rims := make([]dcel.EdgeHandle, 3)
	rimTwins := make([]dcel.EdgeHandle, 3)
	for i := 0; i < 3; i++ {
		e, t := d.graph.AddEdgePair(dcel.TypeNullEdge)
		d.graph.HalfEdge(e).Origin = ov[i]
		d.graph.HalfEdge(t).Origin = ov[(i+1)%3]
		rims[i], rimTwins[i] = e, t
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		d.graph.HalfEdge(spokes[i]).Face = faces[i]
		d.graph.HalfEdge(rims[i]).Face = faces[i]
		d.graph.HalfEdge(spokeTwins[j]).Face = faces[i]

		d.graph.SetNext(spokes[i], rims[i])
		d.graph.SetNext(rims[i], spokeTwins[j])
		d.graph.SetNext(spokeTwins[j], spokes[i])

		// Closes ov[i]'s two-edge rotation: spokeTwins[i] -> rims[i] ->
		// (twin rims[i], outside the modeled disk) -> spokeTwins[i].
		d.graph.SetNext(rimTwins[i], spokeTwins[i])

		d.graph.Face(faces[i]).OutEdge = spokes[i]
	}
	d.graph.Vertex(cv).Edge = spokes[0]
	for i := 0; i < 3; i++ {
		d.graph.Vertex(ov[i]).Edge = spokeTwins[i]
	}

	for i := 0; i < 3; i++ {
		d.grid.Add(faces[i], outerSites[i].Position)
	}
}

func (d *Diagram) GetFarRadius() float64 { return d.farRadius }

func (d *Diagram) NumPointSites() int { return d.numPointSites }
func (d *Diagram) NumLineSites() int  { return d.numLineSites }

// NumVertices reports every live vertex except the three bootstrap
// outer vertices and the center vertex from init, which are fixture,
// not Voronoi vertices produced by an insertion.
func (d *Diagram) NumVertices() int {
	n := 0
	for _, v := range d.graph.AllVertices() {
		if d.graph.Vertex(v).Type != dcel.TypeOuter {
			n++
		}
	}
	return n
}

func (d *Diagram) NumSplitVertices() int { return d.numSplitVertices }

// InsertPointSite inserts a new point site and returns its handle
// (usable as an endpoint index for a later InsertLineSite call).
func (d *Diagram) InsertPointSite(p dcel.Vec2) (int, error) {
	if p.Len() >= d.farRadius {
		return 0, fmt.Errorf("%w: point %v lies outside the far radius", ErrInvalidSite, p)
	}
	for _, existing := range d.pointPositions {
		if existing.Sub(p).Len() < 1e-9 {
			return 0, fmt.Errorf("%w: point %v coincides with an existing site", ErrInvalidSite, p)
		}
	}

	s := dcel.PointSite{Position: p}
	newFace, err := d.insertSite(s, p)
	if err != nil {
		return 0, err
	}

	handle := d.numPointSites
	d.pointPositions = append(d.pointPositions, p)
	d.pointFaces = append(d.pointFaces, newFace)
	d.numPointSites++
	d.grid.Add(newFace, p)

	return handle, nil
}

// InsertLineSite inserts a segment site between two previously
// inserted point sites, identified by the handles InsertPointSite
// returned, and reports whether a new line site was created (false
// when the segment degenerates to a point under the tolerance used
// elsewhere in this package).
func (d *Diagram) InsertLineSite(idx1, idx2 int) (bool, error) {
	if idx1 < 0 || idx1 >= len(d.pointPositions) || idx2 < 0 || idx2 >= len(d.pointPositions) || idx1 == idx2 {
		return false, fmt.Errorf("%w: invalid endpoint handles (%d, %d)", ErrInvalidSite, idx1, idx2)
	}
	a, b := d.pointPositions[idx1], d.pointPositions[idx2]
	if a.Sub(b).Len() < 1e-9 {
		return false, fmt.Errorf("%w: segment endpoints coincide", ErrInvalidSite)
	}

	s := dcel.NewLineSite(a, b)
	mid := a.Add(b).Scale(0.5)
	newFace, err := d.insertSite(s, mid)
	if err != nil {
		return false, err
	}

	d.numLineSites++
	d.grid.Add(newFace, mid)

	if endpoint, cutFace, ok := repair.AddSeparator(d.graph, d.pointFaces[idx1], a, b.Sub(a), s); ok {
		d.grid.Add(cutFace, d.graph.Point(d.graph.Face(cutFace).OutEdge, 0.5))
		d.Events.emit(VertexSplitEvent{Vertex: endpoint})
	}
	if endpoint, cutFace, ok := repair.AddSeparator(d.graph, d.pointFaces[idx2], b, a.Sub(b), s); ok {
		d.grid.Add(cutFace, d.graph.Point(d.graph.Face(cutFace).OutEdge, 0.5))
		d.Events.emit(VertexSplitEvent{Vertex: endpoint})
	}

	for _, f := range d.graph.AllFaces() {
		edges := repair.FindSplitEdges(d.graph, f, s)
		if len(edges) == 0 {
			continue
		}
		newVerts, err := repair.AddSplitVertex(d.graph, f, s)
		if err != nil {
			continue
		}
		for _, v := range newVerts {
			d.numSplitVertices++
			d.Events.emit(VertexSplitEvent{Vertex: v})
		}
	}

	d.rollbackStatus()

	if d.Debug {
		if verr := check.ValidateComplete(d.graph); verr != nil {
			return false, fmt.Errorf("%w: %v", ErrInvariantViolated, verr)
		}
	}

	d.Events.flush()
	return true, nil
}

// insertSite runs the nine-step insertion protocol common to point and
// line sites: seed, flood fill, derive boundary vertices, allocate the
// new face, repair every incident face, remove the deleted IN set,
// reset scratch state, and check invariants in debug mode.
func (d *Diagram) insertSite(s dcel.Site, anchor dcel.Vec2) (dcel.FaceHandle, error) {
	defer d.scratch.reset()

	seedFace, ok := d.grid.FindClosestFace(d.graph, anchor)
	if !ok {
		return dcel.NilFace, fmt.Errorf("%w: no seed face found near %v", ErrPositionerFailed, anchor)
	}

	seed, seedValue, ok := d.findSeedVertex(s, seedFace)
	if !ok || seedValue <= 0 {
		d.Events.emit(SiteRejectedEvent{Err: ErrPredicateUndecidable})
		d.Events.flush()
		return dcel.NilFace, fmt.Errorf("%w: no vertex in the seed face is closer to the new site", ErrPredicateUndecidable)
	}

	d.graph.Vertex(seed).Status = dcel.StatusIn
	inSet, incidentFaces := floodfill.AugmentVertexSet(d.graph, s, seed)
	d.scratch.v0 = inSet
	d.scratch.incidentFaces = incidentFaces

	newVerts, vertexMap, err := repair.AddVertices(d.graph, s, inSet)
	if err != nil {
		d.rollbackStatus()
		d.Events.emit(SiteRejectedEvent{Err: err})
		d.Events.flush()
		return dcel.NilFace, fmt.Errorf("%w: %v", ErrPositionerFailed, err)
	}
	d.scratch.vertexMap = vertexMap

	var newFaceEdges []dcel.EdgeHandle
	numRepaired := 0
	for _, f := range incidentFaces {
		e, ok := repair.RepairFace(d.graph, f, s, vertexMap)
		if !ok {
			continue
		}
		newFaceEdges = append(newFaceEdges, e)
		numRepaired++
		d.Events.emit(FaceRepairedEvent{Face: f})
	}

	newFace := d.assembleNewFaces(s, newFaceEdges)

	d.removeVertexSet(inSet)
	d.rollbackStatus()

	if d.Debug {
		if verr := check.ValidateComplete(d.graph); verr != nil {
			return dcel.NilFace, fmt.Errorf("%w: %v", ErrInvariantViolated, verr)
		}
	}

	d.Events.emit(SiteInsertedEvent{Face: newFace, NumNew: len(newVerts), NumRepair: numRepaired})
	d.Events.flush()

	return newFace, nil
}

// assembleNewFaces turns the bisector edges RepairFace produced into
// one or two faces generated by s. A point site always produces a
// single face; a line site produces one face for the edges on the
// positive side of the segment and, when any edges lie on the negative
// side, a second face for those (spec.md §4.4), partitioned by the sign
// of SignedDistanceToLine at each edge's midpoint. The second face (if
// any) is registered in the
// spatial grid here, using one of its own edge midpoints as its
// anchor, since insertSite only plumbs the primary face back to its
// caller for grid registration.
func (d *Diagram) assembleNewFaces(s dcel.Site, edges []dcel.EdgeHandle) dcel.FaceHandle {
	line, isLine := s.(dcel.LineSite)
	if !isLine {
		newFace := d.graph.AddFace(s, dcel.NilEdge)
		repair.ChainNewFace(d.graph, newFace, edges)
		return newFace
	}

	var posSide, negSide []dcel.EdgeHandle
	for _, e := range edges {
		mid := d.graph.Point(e, 0.5)
		if line.SignedDistanceToLine(mid) >= 0 {
			posSide = append(posSide, e)
		} else {
			negSide = append(negSide, e)
		}
	}

	primary := d.graph.AddFace(s, dcel.NilEdge)
	repair.ChainNewFace(d.graph, primary, posSide)

	if len(negSide) > 0 {
		secondary := d.graph.AddFace(s, dcel.NilEdge)
		repair.ChainNewFace(d.graph, secondary, negSide)
		d.grid.Add(secondary, d.graph.Point(negSide[0], 0.5))
	}

	return primary
}

// findSeedVertex evaluates the in-circle predicate for every non-outer
// vertex of seedFace's boundary against s and returns the one with the
// largest value, whatever its sign (insertSite rejects a non-positive
// best value). ok is false when the face has no non-outer vertex.
func (d *Diagram) findSeedVertex(s dcel.Site, seedFace dcel.FaceHandle) (dcel.VertexHandle, float64, bool) {
	best := dcel.NilVertex
	bestValue := math.Inf(-1)
	for _, v := range d.graph.FaceVertices(seedFace) {
		if d.graph.Vertex(v).Type == dcel.TypeOuter {
			continue
		}
		value := predicate.InCircle(d.graph, v, s)
		if value > bestValue {
			bestValue = value
			best = v
		}
	}
	if best == dcel.NilVertex {
		return dcel.NilVertex, 0, false
	}
	return best, bestValue, true
}

// removeVertexSet deletes every vertex in inSet along with whichever
// of its incident half-edge pairs still originate there. Boundary
// edges were already repointed away from these vertices by RepairFace,
// so only edges fully interior to the deleted region (both endpoints
// in inSet) remain here.
func (d *Diagram) removeVertexSet(inSet []dcel.VertexHandle) {
	for _, v := range inSet {
		for _, e := range d.graph.VertexEdges(v) {
			d.graph.RemoveEdge(d.graph.Twin(e))
			d.graph.RemoveEdge(e)
		}
		d.graph.RemoveVertex(v)
	}
}

// rollbackStatus resets every vertex's status and every face's
// incidence flag to their rest state. Scanning the whole graph rather
// than tracking every touched vertex individually is a deliberate
// simplification: insertions run one at a time and the graphs this
// engine targets are small enough that an O(V+F) sweep per insertion
// is not a meaningful cost.
func (d *Diagram) rollbackStatus() {
	for _, v := range d.graph.AllVertices() {
		vx := d.graph.Vertex(v)
		if vx.Status != dcel.StatusUndecided {
			vx.Status = dcel.StatusUndecided
		}
	}
	for _, f := range d.graph.AllFaces() {
		fx := d.graph.Face(f)
		if fx.Incidence != dcel.NonIncident {
			fx.Incidence = dcel.NonIncident
		}
	}
}

// Print returns a human-readable summary of the diagram's current size,
// in the style of the teacher's debug CLI output.
func (d *Diagram) Print() string {
	return fmt.Sprintf(
		"voronoi diagram v%s: %d point sites, %d line sites, %d vertices (%d split), far radius %.3f",
		Version, d.numPointSites, d.numLineSites, d.NumVertices(), d.numSplitVertices, d.farRadius,
	)
}
