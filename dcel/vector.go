package dcel

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is the 2D point/vector type used throughout the engine. It is a
// thin alias over mgl64.Vec2 so every package shares the teacher's
// vector arithmetic (Add, Sub, Mul, Dot, Len, LenSqr) instead of a
// hand-rolled one.
type Vec2 = mgl64.Vec2

// Cross2 and RightOf are small helpers for the 2D operations mgl64
// does not expose directly (it is a 2/3/4D library built around Vec3
// cross products; 2D cross is a scalar, not a vector).

// Cross2 returns the scalar (z-component) cross product of a and b,
// positive when b is counter-clockwise from a.
func Cross2(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// RightOf reports whether point p lies strictly to the right of the
// directed line from a to b (the geometric primitive spec.md §1 treats
// as an external collaborator; implemented here directly on mgl64
// vectors rather than reintroducing a separate primitives package).
func RightOf(a, b, p Vec2) bool {
	return Cross2(b.Sub(a), p.Sub(a)) < 0
}
