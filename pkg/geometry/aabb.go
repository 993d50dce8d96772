package geometry

import (
	"math"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// AABB is an axis-aligned bounding box in the 2D plane, used only to prune
// the optional BVH acceleration structure — it never participates in the
// actual ray/segment intersection math.
type AABB struct {
	Min, Max qmath.Vec2
}

// NewAABBFromPoints returns an AABB bounding every given point.
func NewAABBFromPoints(points ...qmath.Vec2) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return AABB{Min: min, Max: max}
}

// Union returns an AABB bounding both this box and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: qmath.NewVec2(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y)),
		Max: qmath.NewVec2(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y)),
	}
}

// Hit tests whether the ray (origin, dir) crosses this box, using the slab
// method, within [tMin, tMax].
func (b AABB) Hit(origin, dir qmath.Vec2, tMin, tMax float64) bool {
	for axis := 0; axis < 2; axis++ {
		var lo, hi, o, d float64
		if axis == 0 {
			lo, hi, o, d = b.Min.X, b.Max.X, origin.X, dir.X
		} else {
			lo, hi, o, d = b.Min.Y, b.Max.Y, origin.Y, dir.Y
		}

		if math.Abs(d) < 1e-12 {
			if o < lo || o > hi {
				return false
			}
			continue
		}

		invD := 1.0 / d
		t1 := (lo - o) * invD
		t2 := (hi - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Center returns the box's center point.
func (b AABB) Center() qmath.Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// LongestAxis returns 0 (X) or 1 (Y), whichever extent is larger — used by
// the BVH builder's median split.
func (b AABB) LongestAxis() int {
	size := b.Max.Sub(b.Min)
	if size.X >= size.Y {
		return 0
	}
	return 1
}
