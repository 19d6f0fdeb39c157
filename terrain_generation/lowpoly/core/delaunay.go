package core

import (
	"fmt"
	"math"
)

// infinite is the symbolic vertex that closes the convex hull. A ghost
// triangle (u, v, infinite) sits on the hull edge u->v, and the outside of
// the hull is on the left of u->v.
const infinite = -1

// dTri is a working triangle. Vertices are CCW; at most one is infinite.
type dTri struct {
	v     [3]int
	alive bool // false = deleted (lazy deletion)
}

// ghostEdge returns the finite hull edge of a ghost triangle.
func (t dTri) ghostEdge() (u, v int, ghost bool) {
	switch {
	case t.v[0] == infinite:
		return t.v[1], t.v[2], true
	case t.v[1] == infinite:
		return t.v[2], t.v[0], true
	case t.v[2] == infinite:
		return t.v[0], t.v[1], true
	}
	return 0, 0, false
}

// edgeKey is a directed edge a->b.
type edgeKey struct{ a, b int }

// cavityEdge is a directed boundary edge of the cavity, with the triangle on
// the other side.
type cavityEdge struct {
	a, b    int
	outside int
}

type triangulator struct {
	pts   []Vec2
	tris  []dTri
	edges map[edgeKey]int // directed edge -> triangle that owns it
	last  int             // walking start point
}

// Triangulate performs Delaunay triangulation on a set of 2D points.
// Uses the Bowyer-Watson algorithm with walking point location. The hull is
// closed by a symbolic vertex at infinity instead of a finite super-triangle,
// so the triangles cover the convex hull exactly and every input point is a
// vertex of at least one triangle.
//
// Triangles are CCW in the (x, z) plane. Points exactly on a circumcircle
// are not in conflict, so cocircular ties keep the triangles built from the
// points inserted first (the seed triple, then input order).
func Triangulate(points []Vec2) (*Triangulation, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("triangulate %d points: need at least 3: %w", len(points), ErrDegenerateInput)
	}

	seen := make(map[Vec2]int, len(points))
	for i, p := range points {
		if math.IsNaN(p.X()) || math.IsNaN(p.Y()) || math.IsInf(p.X(), 0) || math.IsInf(p.Y(), 0) {
			return nil, fmt.Errorf("triangulate: point %d is not finite: %w", i, ErrInvalidParameter)
		}
		if j, dup := seen[p]; dup {
			return nil, fmt.Errorf("triangulate: points %d and %d coincide: %w", j, i, ErrDegenerateInput)
		}
		seen[p] = i
	}

	// Seed triangle: points 0 and 1 plus the first point not collinear with them.
	seed := -1
	for k := 2; k < len(points); k++ {
		if Orient2D(points[0], points[1], points[k]) != 0 {
			seed = k
			break
		}
	}
	if seed < 0 {
		return nil, fmt.Errorf("triangulate %d points: all collinear: %w", len(points), ErrDegenerateInput)
	}

	tr := &triangulator{
		pts:   points,
		tris:  make([]dTri, 0, len(points)*2+8),
		edges: make(map[edgeKey]int, len(points)*6+12),
	}

	a, b, c := 0, 1, seed
	if Orient2D(points[a], points[b], points[c]) < 0 {
		b, c = c, b
	}
	tr.last = tr.addTri(a, b, c)
	tr.addTri(b, a, infinite)
	tr.addTri(c, b, infinite)
	tr.addTri(a, c, infinite)

	for pi := 2; pi < len(points); pi++ {
		if pi == seed {
			continue
		}
		if err := tr.insert(pi); err != nil {
			return nil, err
		}
	}

	return tr.result()
}

// addTri appends a triangle and registers its directed edges.
func (tr *triangulator) addTri(a, b, c int) int {
	ti := len(tr.tris)
	tr.tris = append(tr.tris, dTri{v: [3]int{a, b, c}, alive: true})
	tr.edges[edgeKey{a, b}] = ti
	tr.edges[edgeKey{b, c}] = ti
	tr.edges[edgeKey{c, a}] = ti
	return ti
}

// removeTri marks a triangle dead and unregisters its edges.
func (tr *triangulator) removeTri(ti int) {
	t := &tr.tris[ti]
	t.alive = false
	for k := 0; k < 3; k++ {
		key := edgeKey{t.v[k], t.v[(k+1)%3]}
		if tr.edges[key] == ti {
			delete(tr.edges, key)
		}
	}
}

// neighbor returns the triangle across edge k (v[k] -> v[k+1]) of ti.
func (tr *triangulator) neighbor(ti, k int) (int, bool) {
	t := tr.tris[ti]
	nb, ok := tr.edges[edgeKey{t.v[(k+1)%3], t.v[k]}]
	return nb, ok
}

// inConflict reports whether p lies inside the circumcircle of ti. For a
// ghost triangle the circumcircle degenerates to the open half-plane left of
// its hull edge, plus the open hull edge itself.
func (tr *triangulator) inConflict(ti int, p Vec2) bool {
	t := tr.tris[ti]
	if u, v, ghost := t.ghostEdge(); ghost {
		a, b := tr.pts[u], tr.pts[v]
		o := Orient2D(a, b, p)
		if o != 0 {
			return o > 0
		}
		return p.Sub(a).Dot(b.Sub(a)) > 0 && p.Sub(b).Dot(a.Sub(b)) > 0
	}
	return InCircle(tr.pts[t.v[0]], tr.pts[t.v[1]], tr.pts[t.v[2]], p) > 0
}

// locate walks from the last created triangle towards p and returns a
// triangle that must be destroyed by inserting p: the real triangle that
// contains p, or a ghost whose hull edge p can see.
func (tr *triangulator) locate(p Vec2) int {
	cur := tr.last
	if cur < 0 || cur >= len(tr.tris) || !tr.tris[cur].alive {
		cur = tr.scan(p)
	}
	maxSteps := len(tr.tris) + 16 // Safety limit

	for step := 0; step < maxSteps && cur >= 0; step++ {
		t := tr.tris[cur]
		if u, v, ghost := t.ghostEdge(); ghost {
			if tr.inConflict(cur, p) {
				return cur
			}
			// Step back inside across the hull edge
			next, ok := tr.edges[edgeKey{v, u}]
			if !ok {
				break
			}
			cur = next
			continue
		}

		moved := false
		for k := 0; k < 3; k++ {
			a, b := t.v[k], t.v[(k+1)%3]
			if Orient2D(tr.pts[a], tr.pts[b], p) < 0 {
				if next, ok := tr.edges[edgeKey{b, a}]; ok {
					cur = next
					moved = true
					break
				}
			}
		}
		if !moved {
			return cur
		}
	}

	// Fallback: linear scan (shouldn't happen normally)
	return tr.scan(p)
}

// scan returns any alive triangle in conflict with p, preferring a real
// triangle that contains it. Returns -1 if none is found.
func (tr *triangulator) scan(p Vec2) int {
	found := -1
	for ti, t := range tr.tris {
		if !t.alive || !tr.inConflict(ti, p) {
			continue
		}
		if _, _, ghost := t.ghostEdge(); !ghost {
			a, b, c := tr.pts[t.v[0]], tr.pts[t.v[1]], tr.pts[t.v[2]]
			if Orient2D(a, b, p) >= 0 && Orient2D(b, c, p) >= 0 && Orient2D(c, a, p) >= 0 {
				return ti
			}
		}
		if found < 0 {
			found = ti
		}
	}
	return found
}

// insert adds point pi to the triangulation.
func (tr *triangulator) insert(pi int) error {
	p := tr.pts[pi]

	start := tr.locate(p)
	if start < 0 {
		return fmt.Errorf("triangulate: no triangle in conflict with point %d: %w", pi, ErrDegenerateInput)
	}

	// Flood-fill to find all bad triangles
	inCavity := map[int]bool{start: true}
	cavity := []int{start}
	for i := 0; i < len(cavity); i++ {
		for k := 0; k < 3; k++ {
			nb, ok := tr.neighbor(cavity[i], k)
			if !ok || inCavity[nb] {
				continue
			}
			if tr.inConflict(nb, p) {
				inCavity[nb] = true
				cavity = append(cavity, nb)
			}
		}
	}

	cavity, boundary := tr.starShaped(p, cavity, inCavity)

	// A vertex of a destroyed triangle must survive on the cavity boundary.
	onBoundary := make(map[int]bool, len(boundary))
	for _, e := range boundary {
		onBoundary[e.a] = true
	}
	for _, ti := range cavity {
		for _, v := range tr.tris[ti].v {
			if v != infinite && !onBoundary[v] {
				return fmt.Errorf("triangulate: inserting point %d would drop point %d: %w", pi, v, ErrDegenerateInput)
			}
		}
	}

	for _, ti := range cavity {
		tr.removeTri(ti)
	}

	// Create new triangles from polygon edges to the new point
	for _, e := range boundary {
		if _, taken := tr.edges[edgeKey{e.b, pi}]; taken {
			return fmt.Errorf("triangulate: cavity around point %d is not simple: %w", pi, ErrDegenerateInput)
		}
		ti := tr.addTri(e.a, e.b, pi)
		if e.a != infinite && e.b != infinite {
			tr.last = ti
		}
	}
	return nil
}

// starShaped returns the cavity and its boundary, growing the cavity across every
// finite boundary edge that p does not strictly see, so that the fan of new
// triangles around p never folds over.
func (tr *triangulator) starShaped(p Vec2, cavity []int, inCavity map[int]bool) ([]int, []cavityEdge) {
	for {
		boundary := make([]cavityEdge, 0, len(cavity)+2)
		for _, ti := range cavity {
			t := tr.tris[ti]
			for k := 0; k < 3; k++ {
				nb, ok := tr.neighbor(ti, k)
				if !ok {
					nb = -1
				} else if inCavity[nb] {
					continue
				}
				boundary = append(boundary, cavityEdge{a: t.v[k], b: t.v[(k+1)%3], outside: nb})
			}
		}

		grown := false
		for _, e := range boundary {
			if e.a == infinite || e.b == infinite || e.outside < 0 || inCavity[e.outside] {
				continue
			}
			if Orient2D(tr.pts[e.a], tr.pts[e.b], p) > 0 {
				continue
			}
			inCavity[e.outside] = true
			cavity = append(cavity, e.outside)
			grown = true
		}
		if !grown {
			return cavity, boundary
		}
	}
}

// result collects the finite triangles.
func (tr *triangulator) result() (*Triangulation, error) {
	out := &Triangulation{
		Vertices:  make([]Vertex, len(tr.pts)),
		Triangles: make([]Triangle, 0, 2*len(tr.pts)),
	}
	for i, p := range tr.pts {
		out.Vertices[i] = Vertex{ID: i, Pos: p}
	}

	used := make([]bool, len(tr.pts))
	for _, t := range tr.tris {
		if !t.alive {
			continue
		}
		if _, _, ghost := t.ghostEdge(); ghost {
			continue
		}
		out.Triangles = append(out.Triangles, Triangle{A: t.v[0], B: t.v[1], C: t.v[2]})
		used[t.v[0]], used[t.v[1]], used[t.v[2]] = true, true, true
	}

	for i, ok := range used {
		if !ok {
			return nil, fmt.Errorf("triangulate: point %d is not part of any triangle: %w", i, ErrDegenerateInput)
		}
	}
	return out, nil
}
