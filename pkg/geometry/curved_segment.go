package geometry

import (
	"math"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// CurvedSegment is a pair of endpoints plus a signed radius of curvature
// (millimeters). The center of curvature lies on the perpendicular bisector
// of the chord; the sign of R chooses which side of the chord the center
// lies on (positive = center on the chord's +normal side). The optical
// surface is the shorter of the two arcs of the circle (center, |R|)
// delimited by P1, P2.
type CurvedSegment struct {
	P1, P2 qmath.Vec2
	R      float64 // signed radius; R == 0 means flat (use LineSegment instead)
}

// NewCurvedSegment creates a CurvedSegment, or a LineSegment if r is zero.
func NewCurvedSegment(p1, p2 qmath.Vec2, r float64) Segment {
	if r == 0 {
		return NewLineSegment(p1, p2)
	}
	return CurvedSegment{P1: p1, P2: p2, R: r}
}

func (c CurvedSegment) chord() LineSegment {
	return LineSegment{P1: c.P1, P2: c.P2}
}

// Flat implements Segment; a CurvedSegment is never flat (R != 0 by
// construction — NewCurvedSegment returns a LineSegment otherwise).
func (c CurvedSegment) Flat() bool {
	return false
}

// Endpoints implements Segment.
func (c CurvedSegment) Endpoints() (qmath.Vec2, qmath.Vec2) {
	return c.P1, c.P2
}

// HalfChord returns half the distance between the endpoints.
func (c CurvedSegment) HalfChord() float64 {
	return c.chord().Length() / 2
}

// ValidRadius reports whether |R| is large enough to span the chord; a
// radius smaller than half the chord length describes an impossible arc.
func (c CurvedSegment) ValidRadius() bool {
	return math.Abs(c.R) >= c.HalfChord()-qmath.Epsilon
}

// Center returns the center of curvature C.
func (c CurvedSegment) Center() qmath.Vec2 {
	chord := c.chord()
	half := c.HalfChord()
	sagittaSq := c.R*c.R - half*half
	if sagittaSq < 0 {
		sagittaSq = 0 // clamp for numerically-invalid radii; ValidRadius() should be checked first
	}
	distToCenter := math.Sqrt(sagittaSq)
	sign := 1.0
	if c.R < 0 {
		sign = -1.0
	}
	return chord.Midpoint().Add(chord.Normal().Scale(sign * distToCenter))
}

// Bounds implements Segment with a conservative box around the chord
// endpoints and the center +/- radius (cheap over-approximation; fine for
// BVH pruning, which only needs to never under-include).
func (c CurvedSegment) Bounds() AABB {
	center := c.Center()
	r := math.Abs(c.R)
	return NewAABBFromPoints(c.P1, c.P2,
		center.Add(qmath.NewVec2(r, r)),
		center.Sub(qmath.NewVec2(r, r)))
}

// Intersect implements ray_hit_arc: solves the ray/circle quadratic, then
// keeps roots that land on the shorter arc delimited by P1, P2.
func (c CurvedSegment) Intersect(origin, dir qmath.Vec2) (Hit, bool) {
	center := c.Center()
	radius := math.Abs(c.R)

	toOrigin := origin.Sub(center)
	b := 2 * dir.Dot(toOrigin)
	cc := toOrigin.LengthSquared() - radius*radius
	disc := b*b - 4*cc
	if disc < 0 {
		return Hit{}, false
	}
	sqrtDisc := math.Sqrt(disc)
	t0 := (-b - sqrtDisc) / 2
	t1 := (-b + sqrtDisc) / 2
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	for _, t := range []float64{t0, t1} {
		if t < qmath.Epsilon {
			continue
		}
		point := origin.Add(dir.Scale(t))
		if !c.onMinorArc(point, center) {
			continue
		}
		return c.hitAt(t, point, center), true
	}
	return Hit{}, false
}

// onMinorArc reports whether point (assumed to lie on the circle) is on the
// shorter of the two arcs between P1 and P2.
func (c CurvedSegment) onMinorArc(point, center qmath.Vec2) bool {
	a1 := angleOf(c.P1, center)
	a2 := angleOf(c.P2, center)
	ap := angleOf(point, center)

	span := normalizeAngle(a2 - a1)
	if span > math.Pi {
		// the minor arc runs the other way, from p2 to p1
		a1, a2 = a2, a1
		span = 2*math.Pi - span
	}
	offset := normalizeAngle(ap - a1)
	return offset <= span+1e-9
}

func angleOf(p, center qmath.Vec2) float64 {
	d := p.Sub(center)
	return math.Atan2(d.Y, d.X)
}

func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

func (c CurvedSegment) hitAt(t float64, point, center qmath.Vec2) Hit {
	chord := c.chord()
	// The radial normal is oriented to the same side as the chord's signed
	// normal, so the front side of a curved interface (and which medium is
	// N1/N2) follows the same convention as a flat segment.
	normal := point.Sub(center).Normalize()
	if normal.Dot(chord.Normal()) < 0 {
		normal = normal.Negate()
	}
	// The tangent is the arc's local tangent at the hit point, related to
	// normal the same way a flat segment's tangent is (normal =
	// tangent.Perp()), so polarization framing code can treat curved and
	// flat hits identically.
	tangent := qmath.Vec2{X: normal.Y, Y: -normal.X}

	return Hit{
		T:               t,
		Point:           point,
		Tangent:         tangent,
		Normal:          normal,
		CenterOfSegment: chord.Midpoint(),
		Length:          chord.Length(),
		SegParam:        chordParam(point, c.P1, c.P2),
	}
}

// chordParam projects point onto the chord p1->p2 and returns the
// normalized parameter, clamped to [0,1]; used only to feed the
// same tie-break path the flat segment intersection uses.
func chordParam(point, p1, p2 qmath.Vec2) float64 {
	edge := p2.Sub(p1)
	length2 := edge.LengthSquared()
	if length2 < qmath.Epsilon {
		return 0
	}
	u := point.Sub(p1).Dot(edge) / length2
	return qmath.Clamp(u, 0, 1)
}
