package geometry

import (
	"math"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// LineSegment is an oriented pair of endpoints (p1, p2). The tangent is
// (p2-p1)/|p2-p1|; the signed normal is the tangent rotated +90 degrees.
// Which side is "front" is determined solely by this signed normal.
type LineSegment struct {
	P1, P2 qmath.Vec2
}

// NewLineSegment creates a LineSegment from two endpoints.
func NewLineSegment(p1, p2 qmath.Vec2) LineSegment {
	return LineSegment{P1: p1, P2: p2}
}

// Tangent returns the unit direction from P1 to P2.
func (l LineSegment) Tangent() qmath.Vec2 {
	return l.P2.Sub(l.P1).Normalize()
}

// Normal returns the tangent rotated +90 degrees.
func (l LineSegment) Normal() qmath.Vec2 {
	return l.Tangent().Perp()
}

// Midpoint returns the segment's center point.
func (l LineSegment) Midpoint() qmath.Vec2 {
	return l.P1.Add(l.P2).Scale(0.5)
}

// Length returns the distance between the endpoints.
func (l LineSegment) Length() float64 {
	return l.P2.Sub(l.P1).Length()
}

// Endpoints implements Segment.
func (l LineSegment) Endpoints() (qmath.Vec2, qmath.Vec2) {
	return l.P1, l.P2
}

// Flat implements Segment; a LineSegment is always flat.
func (l LineSegment) Flat() bool {
	return true
}

// Bounds implements Segment.
func (l LineSegment) Bounds() AABB {
	return NewAABBFromPoints(l.P1, l.P2)
}

// Intersect implements ray_hit_segment: computes where the ray (origin, dir)
// crosses this segment, if at all. Parallel rays, rays behind the origin
// (t < Epsilon), and crossings outside the segment's [0,1] parameter range
// are reported as misses rather than errors — degenerate geometry is
// silently treated as a missed interface, per the engine's numeric policy.
func (l LineSegment) Intersect(origin, dir qmath.Vec2) (Hit, bool) {
	edge := l.P2.Sub(l.P1)
	denom := dir.Cross(edge)
	if math.Abs(denom) < qmath.Epsilon {
		return Hit{}, false // parallel to the segment
	}

	toStart := l.P1.Sub(origin)
	t := toStart.Cross(edge) / denom
	if t < qmath.Epsilon {
		return Hit{}, false // behind the ray origin
	}

	u := toStart.Cross(dir) / denom
	if u < 0 || u > 1 {
		return Hit{}, false // off the segment
	}

	normal := l.Normal()
	return Hit{
		T:               t,
		Point:           origin.Add(dir.Scale(t)),
		Tangent:         l.Tangent(),
		Normal:          normal,
		CenterOfSegment: l.Midpoint(),
		Length:          l.Length(),
		SegParam:        u,
	}, true
}
