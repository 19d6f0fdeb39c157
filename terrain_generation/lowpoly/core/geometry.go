package core

import (
	"math"
)

// predicateEps is the relative tolerance of Orient2D and InCircle. A
// determinant smaller than predicateEps times the sum of the magnitudes of
// its terms is treated as exactly zero.
const predicateEps = 1e-12

// cross2 returns the 2D scalar cross product (a.x*b.y - a.y*b.x).
// This equals the signed area scale used by many barycentric/tri tests.
func cross2(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Orient2D returns positive if c is left of line a->b, negative if right,
// and exactly zero if the three points are collinear within tolerance.
// The magnitude is twice the signed triangle area.
func Orient2D(a, b, c Vec2) float64 {
	l := (b.X() - a.X()) * (c.Y() - a.Y())
	r := (b.Y() - a.Y()) * (c.X() - a.X())
	det := l - r
	if math.Abs(det) <= predicateEps*(math.Abs(l)+math.Abs(r)) {
		return 0
	}
	return det
}

// InCircle returns positive if p lies strictly inside the circumcircle of
// the CCW triangle (a, b, c), negative if outside and zero if the four
// points are cocircular within tolerance.
func InCircle(a, b, c, p Vec2) float64 {
	adx, ady := a.X()-p.X(), a.Y()-p.Y()
	bdx, bdy := b.X()-p.X(), b.Y()-p.Y()
	cdx, cdy := c.X()-p.X(), c.Y()-p.Y()

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	bc1, bc2 := bdx*cdy, cdx*bdy
	ca1, ca2 := cdx*ady, adx*cdy
	ab1, ab2 := adx*bdy, bdx*ady

	det := alift*(bc1-bc2) + blift*(ca1-ca2) + clift*(ab1-ab2)
	perm := alift*(math.Abs(bc1)+math.Abs(bc2)) +
		blift*(math.Abs(ca1)+math.Abs(ca2)) +
		clift*(math.Abs(ab1)+math.Abs(ab2))
	if math.Abs(det) <= predicateEps*perm {
		return 0
	}
	return det
}

// Circumcenter returns circumcenter of triangle (a,b,c).
// ok=false if triangle is degenerate (area near zero).
func Circumcenter(a, b, c Vec2) (cc Vec2, ok bool) {
	// Based on perpendicular bisector intersection formula.
	d := 2 * (a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y()))
	if Orient2D(a, b, c) == 0 || d == 0 {
		return Vec2{}, false
	}

	a2 := a.Dot(a)
	b2 := b.Dot(b)
	c2 := c.Dot(c)

	ux := (a2*(b.Y()-c.Y()) + b2*(c.Y()-a.Y()) + c2*(a.Y()-b.Y())) / d
	uy := (a2*(c.X()-b.X()) + b2*(a.X()-c.X()) + c2*(b.X()-a.X())) / d
	return Vec2{ux, uy}, true
}

// TriangleArea2D returns the unsigned area of triangle (a, b, c).
func TriangleArea2D(a, b, c Vec2) float64 {
	return math.Abs(cross2(b.Sub(a), c.Sub(a))) / 2
}

// Barycentric returns barycentric weights (wa, wb, wc) for point p in
// triangle (a, b, c). The weights satisfy:
//
//	p = wa*A + wb*B + wc*C
//	wa + wb + wc = 1
//
// ok=false if the triangle is degenerate (area ~ 0).
func Barycentric(a, b, c, p Vec2) (wa, wb, wc float64, ok bool) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	denom := cross2(v0, v1) // 2*area signed
	const eps = 1e-12
	if math.Abs(denom) < eps {
		return 0, 0, 0, false
	}

	wb = cross2(v2, v1) / denom
	wc = cross2(v0, v2) / denom
	wa = 1.0 - wb - wc
	return wa, wb, wc, true
}

// FaceNormal returns the unit normal cross(b-a, c-a) of a 3D triangle.
// ok=false and Up is returned for degenerate faces.
func FaceNormal(a, b, c Vec3) (Vec3, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	length := n.Len()
	if length < 1e-12 || math.IsNaN(length) {
		return Up, false
	}
	return n.Mul(1.0 / length), true
}
