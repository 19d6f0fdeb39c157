package lowpoly

import (
	"math"

	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/peterstace/simplefeatures/rtree"
)

// Surface provides point location for height queries on an assembled mesh.
// Coordinates are the centered (x, z) of MeshBuffers.Positions.
type Surface struct {
	Mesh  *MeshBuffers
	index *rtree.RTree
}

// NewSurface indexes the bounding box of every face of mesh.
func NewSurface(mesh *MeshBuffers) *Surface {
	s := &Surface{Mesh: mesh}
	if mesh == nil || mesh.TriangleCount() == 0 {
		return s
	}

	items := make([]rtree.BulkItem, mesh.TriangleCount())
	for ti := range items {
		a, b, c := mesh.Face(ti)
		items[ti] = rtree.BulkItem{
			Box: rtree.Box{
				MinX: math.Min(a.X(), math.Min(b.X(), c.X())),
				MinY: math.Min(a.Z(), math.Min(b.Z(), c.Z())),
				MaxX: math.Max(a.X(), math.Max(b.X(), c.X())),
				MaxY: math.Max(a.Z(), math.Max(b.Z(), c.Z())),
			},
			RecordID: ti,
		}
	}
	s.index = rtree.BulkLoad(items)
	return s
}

// LocateTriangle finds the face containing (x, z).
// Returns (triangleIndex, ok) where ok=false if the point is outside the mesh.
func (s *Surface) LocateTriangle(x, z float64) (int, bool) {
	if s == nil || s.index == nil {
		return -1, false
	}
	found := -1
	p := core.Vec2{x, z}
	_ = s.index.RangeSearch(rtree.Box{MinX: x, MinY: z, MaxX: x, MaxY: z}, func(ti int) error {
		if _, _, _, inside := s.weights(ti, p); inside {
			found = ti
			return rtree.Stop
		}
		return nil
	})
	return found, found >= 0
}

// weights returns the barycentric weights of p in face ti.
func (s *Surface) weights(ti int, p core.Vec2) (wa, wb, wc float64, inside bool) {
	a, b, c := s.Mesh.Face(ti)
	wa, wb, wc, ok := core.Barycentric(
		core.Vec2{a.X(), a.Z()},
		core.Vec2{b.X(), b.Z()},
		core.Vec2{c.X(), c.Z()},
		p,
	)
	if !ok {
		return 0, 0, 0, false
	}
	// Small epsilon for points on shared edges
	const eps = -1e-9
	return wa, wb, wc, wa >= eps && wb >= eps && wc >= eps
}

// HeightAt returns the interpolated height at (x, z).
// Returns (height, ok) where ok=false if the point is outside the mesh.
func (s *Surface) HeightAt(x, z float64) (float64, bool) {
	ti, ok := s.LocateTriangle(x, z)
	if !ok {
		return 0, false
	}
	wa, wb, wc, _ := s.weights(ti, core.Vec2{x, z})
	a, b, c := s.Mesh.Face(ti)
	return wa*a.Y() + wb*b.Y() + wc*c.Y(), true
}

// NormalAt returns the face normal at (x, z).
func (s *Surface) NormalAt(x, z float64) (core.Vec3, bool) {
	ti, ok := s.LocateTriangle(x, z)
	if !ok {
		return core.Vec3{}, false
	}
	return s.Mesh.Normals[3*ti], true
}
