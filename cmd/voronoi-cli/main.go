// Command voronoi-cli drives a small fixed sequence of insertions
// against a diagram and prints a debug trace of each step, in the
// style of the teacher's example/simpleScene debug driver.
package main

import (
	"fmt"

	"github.com/planarfield/voronoi"
	"github.com/planarfield/voronoi/dcel"
)

// Debugger mirrors the teacher's CollisionDebugger interface: a small
// instrumentation surface a caller can swap out, rather than
// hard-coded fmt.Printf calls scattered through the insertion loop.
type Debugger interface {
	DebugPointInserted(p dcel.Vec2, handle int)
	DebugLineInserted(a, b dcel.Vec2, created bool)
	DebugRejected(err error)
}

// PrintDebugger implements Debugger with emoji-prefixed stdout dumps.
type PrintDebugger struct{}

func (d *PrintDebugger) DebugPointInserted(p dcel.Vec2, handle int) {
	fmt.Printf("📍 point inserted: %v -> handle %d\n", p, handle)
}

func (d *PrintDebugger) DebugLineInserted(a, b dcel.Vec2, created bool) {
	fmt.Printf("📏 segment inserted: %v -> %v (new line site: %v)\n", a, b, created)
}

func (d *PrintDebugger) DebugRejected(err error) {
	fmt.Printf("❌ insertion rejected: %v\n", err)
}

// SetupDiagram builds a diagram bounded by a far radius of 100, with
// debug-mode checking enabled so every insertion is audited.
func SetupDiagram() (*voronoi.Diagram, Debugger) {
	d := voronoi.New(100, 64)
	d.Debug = true
	return d, &PrintDebugger{}
}

// RunSquareScene inserts the four corners of a square, then the
// segment joining two of them, and prints a trace of each step.
func RunSquareScene() {
	fmt.Println("🧪 square-of-points scene")
	fmt.Println("=========================")

	d, debugger := SetupDiagram()

	points := []dcel.Vec2{
		{-10, -10},
		{10, -10},
		{10, 10},
		{-10, 10},
	}

	handles := make([]int, 0, len(points))
	for _, p := range points {
		h, err := d.InsertPointSite(p)
		if err != nil {
			debugger.DebugRejected(err)
			continue
		}
		handles = append(handles, h)
		debugger.DebugPointInserted(p, h)
	}

	if len(handles) >= 2 {
		created, err := d.InsertLineSite(handles[0], handles[1])
		if err != nil {
			debugger.DebugRejected(err)
		} else {
			debugger.DebugLineInserted(points[0], points[1], created)
		}
	}

	fmt.Println(d.Print())
}

func main() {
	RunSquareScene()
}
