package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a point in sample space. X() is the east axis and Y() is the
// north axis, which becomes Z once a height is attached.
type Vec2 = mgl64.Vec2

// Vec3 represents a 3D point/vector (X = east, Y = up, Z = north).
type Vec3 = mgl64.Vec3

// Up is the fallback normal for degenerate faces.
var Up = Vec3{0, 1, 0}

// Vertex is a triangulation vertex. ID is the index of the input point it
// came from.
type Vertex struct {
	ID  int
	Pos Vec2
}

// Triangle references 3 vertex IDs in CCW order in the (x, z) plane.
type Triangle struct{ A, B, C int }

// Triangulation is the output of Triangulate. Vertices[i].ID == i.
type Triangulation struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// Corners returns the positions of triangle ti.
func (t *Triangulation) Corners(ti int) (a, b, c Vec2) {
	tri := t.Triangles[ti]
	return t.Vertices[tri.A].Pos, t.Vertices[tri.B].Pos, t.Vertices[tri.C].Pos
}

// Area returns the summed area of all triangles.
func (t *Triangulation) Area() float64 {
	sum := 0.0
	for ti := range t.Triangles {
		a, b, c := t.Corners(ti)
		sum += TriangleArea2D(a, b, c)
	}
	return sum
}

// Points returns the vertex positions in ID order.
func (t *Triangulation) Points() []Vec2 {
	pts := make([]Vec2, len(t.Vertices))
	for i, v := range t.Vertices {
		pts[i] = v.Pos
	}
	return pts
}
