package lowpoly

import (
	"math"

	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/lucasb-eyer/go-colorful"
)

// MeshBuffers is a faceted mesh: every triangle owns three positions, so
// normals and colors are flat per face. Indices are 0..n-1 in order.
type MeshBuffers struct {
	Positions []core.Vec3
	Indices   []uint32
	Normals   []core.Vec3
	Colors    []colorful.Color

	RawMin, RawMax float64 // noise range before normalization
	MinY, MaxY     float64 // height range after shaping
}

// TriangleCount returns len(Indices)/3.
func (m *MeshBuffers) TriangleCount() int { return len(m.Indices) / 3 }

// Face returns the three positions of triangle i.
func (m *MeshBuffers) Face(i int) (a, b, c core.Vec3) {
	return m.Positions[m.Indices[3*i]], m.Positions[m.Indices[3*i+1]], m.Positions[m.Indices[3*i+2]]
}

// HeightSampler returns a raw height for a world position.
type HeightSampler interface {
	At(x, z float64) float64
}

// HeightShaping turns normalized heights into world heights.
//
//	s = n*RangeScale + RangeOffset
//	y = s*(1-Dampening)*HeightScale  if s < SeaLevel
//	y = s*HeightScale                otherwise
//
// SeaLevel is compared with s before scaling, so it is a fraction of
// HeightScale rather than a world height.
type HeightShaping struct {
	HeightScale float64
	SeaLevel    float64
	Dampening   float64
	RangeScale  float64
	RangeOffset float64
}

// Apply shapes a normalized height n.
func (s HeightShaping) Apply(n float64) float64 {
	v := n*s.RangeScale + s.RangeOffset
	if v < s.SeaLevel {
		return v * (1 - s.Dampening) * s.HeightScale
	}
	return v * s.HeightScale
}

// Assemble builds the faceted mesh of tri. Heights are sampled from field at
// the uncentered (x, z) of each vertex, normalized over the whole mesh and
// shaped; the mesh is then centered on the origin of domain.
//
// Vertices are emitted as (A, C, B) so that front faces are counter-clockwise
// seen from +Y and every face normal has a non-negative Y.
func Assemble(tri *core.Triangulation, domain Domain, field HeightSampler, shaping HeightShaping, ramp Ramp) *MeshBuffers {
	n := 3 * len(tri.Triangles)
	m := &MeshBuffers{
		Positions: make([]core.Vec3, n),
		Indices:   make([]uint32, n),
		Normals:   make([]core.Vec3, n),
		Colors:    make([]colorful.Color, n),
	}

	// Raw heights
	lo, hi := math.Inf(1), math.Inf(-1)
	for ti, t := range tri.Triangles {
		for k, id := range [3]int{t.A, t.C, t.B} {
			p := tri.Vertices[id].Pos
			y := field.At(p.X(), p.Y())
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
			m.Positions[3*ti+k] = core.Vec3{p.X(), y, p.Y()}
			m.Indices[3*ti+k] = uint32(3*ti + k)
		}
	}
	if n == 0 {
		return m
	}
	m.RawMin, m.RawMax = lo, hi

	// Normalize and shape
	m.MinY, m.MaxY = math.Inf(1), math.Inf(-1)
	for i := range m.Positions {
		norm := 0.0
		if hi > lo {
			norm = (m.Positions[i][1] - lo) / (hi - lo)
		}
		y := shaping.Apply(norm)
		m.Positions[i][1] = y
		m.MinY = math.Min(m.MinY, y)
		m.MaxY = math.Max(m.MaxY, y)
	}

	// Center on the origin
	cx, cz := domain.Width/2, domain.Height/2
	for i := range m.Positions {
		m.Positions[i][0] -= cx
		m.Positions[i][2] -= cz
	}

	// Normals and colors per face, on the final positions
	for ti := 0; ti < len(tri.Triangles); ti++ {
		a, b, c := m.Positions[3*ti], m.Positions[3*ti+1], m.Positions[3*ti+2]
		normal, _ := core.FaceNormal(a, b, c)

		t := 0.0
		if shaping.HeightScale != 0 {
			t = clamp01((a.Y() + b.Y() + c.Y()) / 3 / shaping.HeightScale)
		}
		col := ramp.Evaluate(t)

		for k := 0; k < 3; k++ {
			m.Normals[3*ti+k] = normal
			m.Colors[3*ti+k] = col
		}
	}

	return m
}
