package propagate

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// leafThreshold mirrors the teacher's BVH: leaves this small or smaller
// store their elements directly rather than splitting further.
const leafThreshold = 8

// bvhNode is one node of the 2D bounding volume hierarchy over element
// AABBs, adapted from the teacher's pkg/geometry.BVHNode (3D shapes) down
// to the 2D segment/arc AABBs this module's elements expose. It lives in
// pkg/propagate rather than pkg/geometry because it indexes
// element.OpticalElement, which already depends on pkg/geometry - putting
// it there would create an import cycle.
type bvhNode struct {
	bounds   geometry.AABB
	left     *bvhNode
	right    *bvhNode
	elements []element.OpticalElement // non-nil only for leaves
}

// bvh is an optional spatial index for nearest-hit search. A correctly
// built bvh produces identical nearest-hit results to the linear scan
// within numeric tolerance; it exists purely to cut scan cost for scenes
// with many elements.
type bvh struct {
	root *bvhNode
}

// newBVH builds a bvh from a copy of els (the caller's slice is never
// mutated).
func newBVH(els []element.OpticalElement) *bvh {
	if len(els) == 0 {
		return &bvh{}
	}
	elsCopy := make([]element.OpticalElement, len(els))
	copy(elsCopy, els)
	return &bvh{root: buildBVHNode(elsCopy)}
}

func buildBVHNode(els []element.OpticalElement) *bvhNode {
	bounds := els[0].Geometry.Bounds()
	for _, e := range els[1:] {
		bounds = bounds.Union(e.Geometry.Bounds())
	}

	if len(els) <= leafThreshold {
		return &bvhNode{bounds: bounds, elements: els}
	}

	axis := bounds.LongestAxis()
	splitPos := axisMidpoint(bounds, axis)

	var left, right []element.OpticalElement
	for _, e := range els {
		center := e.Geometry.Bounds().Center()
		if axisValue(center, axis) < splitPos {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{bounds: bounds, elements: els}
	}

	return &bvhNode{bounds: bounds, left: buildBVHNode(left), right: buildBVHNode(right)}
}

func axisMidpoint(box geometry.AABB, axis int) float64 {
	if axis == 0 {
		return (box.Min.X + box.Max.X) / 2
	}
	return (box.Min.Y + box.Max.Y) / 2
}

func axisValue(p qmath.Vec2, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// nearest finds the closest element (by hit.T) that origin/dir intersects,
// excluding excludeID, ties broken toward the more interior SegParam the
// same way the linear scan in nearest_hit.go does.
func (b *bvh) nearest(origin, dir qmath.Vec2, excludeID int, hasExclude bool) (element.OpticalElement, geometry.Hit, bool) {
	if b.root == nil {
		return element.OpticalElement{}, geometry.Hit{}, false
	}
	var best element.OpticalElement
	var bestHit geometry.Hit
	found := false
	searchBVHNode(b.root, origin, dir, excludeID, hasExclude, &best, &bestHit, &found)
	return best, bestHit, found
}

func searchBVHNode(node *bvhNode, origin, dir qmath.Vec2, excludeID int, hasExclude bool, best *element.OpticalElement, bestHit *geometry.Hit, found *bool) {
	tMax := 1e18
	if *found {
		tMax = bestHit.T
	}
	if !node.bounds.Hit(origin, dir, qmath.Epsilon, tMax) {
		return
	}

	if node.elements != nil {
		for _, e := range node.elements {
			if hasExclude && e.ID == excludeID {
				continue
			}
			hit, ok := e.Geometry.Intersect(origin, dir)
			if !ok {
				continue
			}
			considerCandidate(e, hit, best, bestHit, found)
		}
		return
	}

	searchBVHNode(node.left, origin, dir, excludeID, hasExclude, best, bestHit, found)
	searchBVHNode(node.right, origin, dir, excludeID, hasExclude, best, bestHit, found)
}
