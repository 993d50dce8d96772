package element

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// interactWaveplate passes the ray straight through, retarding its
// polarization. The propagation engine is responsible for emitting the
// incoming path segment at its pre-transformation polarization before
// pushing the descendant this returns (element.OpticalElement.ChangesPolarization
// flags this kind for that policy).
func interactWaveplate(ray core.Ray, hit geometry.Hit, p optics.WaveplateProps, epsAdvance, minIntensity float64, elementID int) []core.Ray {
	newPol := optics.TransformWaveplate(ray.Polarization, p.PhaseShiftDeg, p.FastAxisDeg)
	child := ray.Split(ray.Direction, hit.Point, hit.T, epsAdvance, newPol, 1.0, elementID)
	if !passesThreshold(child.Intensity, minIntensity) {
		return nil
	}
	return []core.Ray{child}
}
