package element

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// interactBeamsplitter produces a transmitted and a reflected ray. A
// non-polarizing splitter uses the fixed SplitT/SplitR fractions; a
// polarizing one ignores them in favor of a Malus's-law projection onto
// PBSTransmissionAxisDeg.
func interactBeamsplitter(ray core.Ray, hit geometry.Hit, p optics.BeamsplitterProps, epsAdvance, minIntensity float64, elementID int) []core.Ray {
	var out []core.Ray

	transmittedPol, transmittedFactor := optics.TransformBeamsplitter(ray.Polarization, ray.Direction, hit.Normal, p.IsPolarizing, p.PBSTransmissionAxisDeg, p.SplitT, p.SplitR, optics.Transmitted)
	if transmitted := ray.Split(ray.Direction, hit.Point, hit.T, epsAdvance, transmittedPol, transmittedFactor, elementID); passesThreshold(transmitted.Intensity, minIntensity) {
		out = append(out, transmitted)
	}

	reflectedDir := qmath.Reflect(ray.Direction, hit.Normal)
	reflectedPol, reflectedFactor := optics.TransformBeamsplitter(ray.Polarization, ray.Direction, hit.Normal, p.IsPolarizing, p.PBSTransmissionAxisDeg, p.SplitT, p.SplitR, optics.Reflected)
	if reflected := ray.Split(reflectedDir, hit.Point, hit.T, epsAdvance, reflectedPol, reflectedFactor, elementID); passesThreshold(reflected.Intensity, minIntensity) {
		out = append(out, reflected)
	}

	return out
}
