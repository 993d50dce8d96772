package element

import (
	gomath "math"

	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// interactLens applies the thin-lens paraxial rule. A curved-geometry lens
// uses the same rule in the hit's local tangent/normal frame, with the
// offset y measured from the chord midpoint along that tangent: a true
// curved refracting surface is instead built from two RefractiveProps
// elements.
func interactLens(ray core.Ray, hit geometry.Hit, p optics.LensProps, epsAdvance, minIntensity float64, elementID int) []core.Ray {
	// axis is the segment normal oriented to face the same way as the
	// incoming ray, so the bend direction below doesn't depend on the
	// arbitrary p1->p2 winding that fixes hit.Normal's sign.
	axis := hit.Normal
	if ray.Direction.Dot(axis) < 0 {
		axis = axis.Negate()
	}
	alongAxis := ray.Direction.Dot(axis)
	alongT := ray.Direction.Dot(hit.Tangent)
	y := hit.Point.Sub(hit.CenterOfSegment).Dot(hit.Tangent)

	// The rule is applied to the ray slope (tangent component per unit of
	// axial component), so every ray parallel to the axis crosses it exactly
	// one focal length behind the lens.
	var delta float64
	if gomath.Abs(p.EFLmm) >= qmath.Epsilon {
		delta = -y / p.EFLmm
	}
	newSlope := alongT/alongAxis + delta
	newDir := axis.Add(hit.Tangent.Scale(newSlope)).Normalize()

	child := ray.Split(newDir, hit.Point, hit.T, epsAdvance, optics.TransformLens(ray.Polarization), 1.0, elementID)
	if !passesThreshold(child.Intensity, minIntensity) {
		return nil
	}
	return []core.Ray{child}
}
