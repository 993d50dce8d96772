// Package geometry implements the closed-form 2D intersection routines and
// segment types the propagation engine dispatches against: flat line
// segments and circularly curved segments, both exposed behind the Segment
// interface.
package geometry

import (
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// Hit describes where and how a ray crosses a Segment.
type Hit struct {
	T               float64    // distance along the ray to the crossing
	Point           qmath.Vec2 // world-space crossing point
	Tangent         qmath.Vec2 // unit tangent at the crossing, in the flat-surface sense
	Normal          qmath.Vec2 // unit signed normal at the crossing (tangent rotated +90)
	CenterOfSegment qmath.Vec2 // midpoint of the chord (p1,p2), regardless of curvature
	Length          float64    // chord length (p1 to p2)
	SegParam        float64    // parameter in [0,1] of the crossing along the segment/chord, p1->p2
}

// Segment is implemented by the two geometry kinds an optical interface can
// have: LineSegment and CurvedSegment. It deliberately has no "is curved"
// flag — callers type-switch or rely on Flat() where the distinction
// matters (e.g. thin-lens chord geometry).
type Segment interface {
	// Intersect computes the nearest crossing of the ray (origin, dir) with
	// this segment at parameter t >= Epsilon. dir must be unit length.
	Intersect(origin, dir qmath.Vec2) (Hit, bool)

	// Endpoints returns the segment's defining endpoints.
	Endpoints() (p1, p2 qmath.Vec2)

	// Bounds returns an axis-aligned bounding box enclosing the segment,
	// used by the optional BVH acceleration structure.
	Bounds() AABB

	// Flat reports whether this segment behaves as a straight line
	// (true for LineSegment; always false for CurvedSegment, since
	// NewCurvedSegment returns a LineSegment for radius 0).
	Flat() bool
}
