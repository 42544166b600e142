package voronoi

import (
	"math"

	"github.com/planarfield/voronoi/dcel"
)

// FaceGrid is the nearest-face spatial index spec.md §6 calls out as an
// external collaborator: add(face, site_position) and
// grid_find_closest_face(query_point). It is a uniform hash grid with a
// power-of-two cell count, the same structure as the teacher's
// SpatialGrid (spatialgrid.go), reduced from 3D AABB buckets to 2D
// point buckets since every site here occupies a single cell, not a
// volume.
type FaceGrid struct {
	cellSize float64
	cells    []gridCell
	cellMask int
}

type gridCell struct {
	faces []dcel.FaceHandle
}

type cellKey struct {
	X, Y int
}

// NewFaceGrid creates a grid with the given cell size and a cell count
// rounded up to the next power of two, mirroring
// spatialgrid.NewSpatialGrid/nextPowerOfTwo.
func NewFaceGrid(cellSize float64, numCells int) *FaceGrid {
	numCells = nextPowerOfTwo(numCells)
	return &FaceGrid{
		cellSize: cellSize,
		cells:    make([]gridCell, numCells),
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Add registers face under the cell containing pos (the anchor point the
// caller chooses: a point site's position, a segment's midpoint, or an
// edge midpoint for the extra faces a segment insertion creates).
func (g *FaceGrid) Add(face dcel.FaceHandle, pos dcel.Vec2) {
	key := g.worldToCell(pos)
	idx := g.hashCell(key)
	g.cells[idx].faces = append(g.cells[idx].faces, face)
}

// FindClosestFace implements grid_find_closest_face: it expands a
// ring search outward from query's cell until at least one candidate
// is found, then searches one extra ring to catch a closer face whose
// cell center is farther away but whose boundary dips nearer query,
// and returns whichever candidate minimizes Site.DistanceTo(query).
func (g *FaceGrid) FindClosestFace(graph *dcel.Graph, query dcel.Vec2) (dcel.FaceHandle, bool) {
	center := g.worldToCell(query)

	const maxRadius = 64
	found := false
	best := dcel.NilFace
	bestDist := math.Inf(1)
	extraRings := 0

	for radius := 0; radius <= maxRadius; radius++ {
		any := g.scanRing(graph, query, center, radius, &best, &bestDist)
		if found {
			extraRings++
			if extraRings >= 1 {
				break
			}
			continue
		}
		if any {
			found = true
		}
	}

	return best, found
}

func (g *FaceGrid) scanRing(graph *dcel.Graph, query dcel.Vec2, center cellKey, radius int, best *dcel.FaceHandle, bestDist *float64) bool {
	any := false
	visit := func(key cellKey) {
		idx := g.hashCell(key)
		for _, f := range g.cells[idx].faces {
			any = true
			d := graph.Face(f).Site.DistanceTo(query)
			if d < *bestDist {
				*bestDist = d
				*best = f
			}
		}
	}

	if radius == 0 {
		visit(center)
		return any
	}

	for dx := -radius; dx <= radius; dx++ {
		visit(cellKey{center.X + dx, center.Y - radius})
		visit(cellKey{center.X + dx, center.Y + radius})
	}
	for dy := -radius + 1; dy <= radius-1; dy++ {
		visit(cellKey{center.X - radius, center.Y + dy})
		visit(cellKey{center.X + radius, center.Y + dy})
	}
	return any
}

func (g *FaceGrid) worldToCell(pos dcel.Vec2) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
	}
}

func (g *FaceGrid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663)
	return h & g.cellMask
}
