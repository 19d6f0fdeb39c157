package lowpoly

import (
	"math"
	"testing"
)

func TestSurfaceQueries(t *testing.T) {
	cfg := scenarioConfig()
	cfg.MinDistance = 0.7
	m, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSurface(m)

	for ti := 0; ti < m.TriangleCount(); ti++ {
		a, b, c := m.Face(ti)
		x := (a.X() + b.X() + c.X()) / 3
		z := (a.Z() + b.Z() + c.Z()) / 3

		h, ok := s.HeightAt(x, z)
		if !ok {
			t.Fatalf("centroid of face %d not found", ti)
		}
		if want := (a.Y() + b.Y() + c.Y()) / 3; math.Abs(h-want) > 1e-9 {
			t.Errorf("face %d: HeightAt = %v, want %v", ti, h, want)
		}

		found, ok := s.LocateTriangle(x, z)
		if !ok {
			t.Fatalf("face %d not located", ti)
		}
		n, ok := s.NormalAt(x, z)
		if !ok || n != m.Normals[3*found] {
			t.Errorf("face %d: NormalAt = %v, want %v", ti, n, m.Normals[3*found])
		}
	}

	if _, ok := s.HeightAt(cfg.Width, cfg.Height); ok {
		t.Error("point outside the domain reported a height")
	}
	if _, ok := s.NormalAt(-cfg.Width, 0); ok {
		t.Error("point outside the domain reported a normal")
	}
}

func TestSurfaceEmpty(t *testing.T) {
	for _, s := range []*Surface{nil, NewSurface(nil), NewSurface(&MeshBuffers{})} {
		if _, ok := s.HeightAt(0, 0); ok {
			t.Error("empty surface reported a height")
		}
	}
}
