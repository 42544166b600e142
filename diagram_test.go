package voronoi

import (
	"testing"

	"github.com/planarfield/voronoi/dcel"
)

func TestNewDiagramStartsWithThreeOuterTriangleFaces(t *testing.T) {
	d := New(100, 16)
	if got := d.graph.NumFaces(); got != 3 {
		t.Fatalf("expected 3 bootstrap faces, got %d", got)
	}
	if got := d.NumVertices(); got != 0 {
		t.Fatalf("expected 0 non-outer vertices before any insertion, got %d", got)
	}
}

func TestInsertPointSiteAddsAFace(t *testing.T) {
	d := New(100, 16)
	d.Debug = true

	facesBefore := d.graph.NumFaces()
	handle, err := d.InsertPointSite(dcel.Vec2{0, 0})
	if err != nil {
		t.Fatalf("InsertPointSite: %v", err)
	}
	if handle != 0 {
		t.Fatalf("expected first handle 0, got %d", handle)
	}
	if d.NumPointSites() != 1 {
		t.Fatalf("expected 1 point site, got %d", d.NumPointSites())
	}
	if got := d.graph.NumFaces(); got != facesBefore+1 {
		t.Fatalf("expected face count to grow by 1, got %d -> %d", facesBefore, got)
	}
}

func TestInsertPointSiteRejectsOutsideFarRadius(t *testing.T) {
	d := New(100, 16)
	_, err := d.InsertPointSite(dcel.Vec2{200, 0})
	if err == nil {
		t.Fatal("expected an error for a point outside the far radius")
	}
}

func TestInsertPointSiteRejectsDuplicate(t *testing.T) {
	d := New(100, 16)
	if _, err := d.InsertPointSite(dcel.Vec2{5, 5}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := d.InsertPointSite(dcel.Vec2{5, 5}); err == nil {
		t.Fatal("expected second identical insertion to be rejected")
	}
}

func TestInsertSquareThenSegment(t *testing.T) {
	d := New(100, 16)
	d.Debug = true

	corners := []dcel.Vec2{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}
	handles := make([]int, len(corners))
	for i, c := range corners {
		h, err := d.InsertPointSite(c)
		if err != nil {
			t.Fatalf("insert corner %d: %v", i, err)
		}
		handles[i] = h
	}

	facesBefore := d.graph.NumFaces()
	created, err := d.InsertLineSite(handles[0], handles[1])
	if err != nil {
		t.Fatalf("InsertLineSite: %v", err)
	}
	if !created {
		t.Fatal("expected a new line site to be created")
	}
	if d.NumLineSites() != 1 {
		t.Fatalf("expected 1 line site, got %d", d.NumLineSites())
	}
	if got := d.graph.NumFaces(); got <= facesBefore {
		t.Fatalf("expected segment insertion to grow face count, got %d -> %d", facesBefore, got)
	}
}
