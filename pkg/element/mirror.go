package element

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// interactMirror reflects the ray and attenuates intensity by
// Reflectivity; works identically for flat and curved geometry since only
// the normal at the hit point differs between them.
func interactMirror(ray core.Ray, hit geometry.Hit, p optics.MirrorProps, epsAdvance, minIntensity float64, elementID int) []core.Ray {
	newDir := qmath.Reflect(ray.Direction, hit.Normal)
	newPol := optics.TransformMirror(ray.Polarization, ray.Direction, hit.Normal)
	child := ray.Split(newDir, hit.Point, hit.T, epsAdvance, newPol, p.Reflectivity, elementID)
	if !passesThreshold(child.Intensity, minIntensity) {
		return nil
	}
	return []core.Ray{child}
}
