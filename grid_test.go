package voronoi

import (
	"testing"

	"github.com/planarfield/voronoi/dcel"
)

func TestFaceGridFindsNearestRegisteredFace(t *testing.T) {
	g := dcel.NewGraph()
	fg := NewFaceGrid(1.0, 64)

	near := g.AddFace(dcel.PointSite{Position: dcel.Vec2{0, 0}}, dcel.NilEdge)
	far := g.AddFace(dcel.PointSite{Position: dcel.Vec2{20, 20}}, dcel.NilEdge)

	fg.Add(near, dcel.Vec2{0, 0})
	fg.Add(far, dcel.Vec2{20, 20})

	got, ok := fg.FindClosestFace(g, dcel.Vec2{0.5, 0.5})
	if !ok {
		t.Fatal("expected a face to be found")
	}
	if got != near {
		t.Fatalf("expected nearest face %d, got %d", near, got)
	}
}

func TestFaceGridReportsNotFoundOnEmptyGrid(t *testing.T) {
	g := dcel.NewGraph()
	fg := NewFaceGrid(1.0, 64)

	_, ok := fg.FindClosestFace(g, dcel.Vec2{0, 0})
	if ok {
		t.Fatal("expected no face to be found in an empty grid")
	}
}
