package element

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// interactDichroic splits the ray by wavelength-dependent transmission T,
// with reflection carrying the complementary fraction R = 1-T.
func interactDichroic(ray core.Ray, hit geometry.Hit, p optics.DichroicProps, epsAdvance, minIntensity float64, elementID int) []core.Ray {
	t := optics.DichroicTransmission(ray.WavelengthNM, p.CutoffNM, p.TransitionWidthNM, p.PassType)
	r := 1 - t

	var out []core.Ray

	if transmitted := ray.Split(ray.Direction, hit.Point, hit.T, epsAdvance, ray.Polarization, t, elementID); passesThreshold(transmitted.Intensity, minIntensity) {
		out = append(out, transmitted)
	}

	reflectedDir := qmath.Reflect(ray.Direction, hit.Normal)
	reflectedPol := optics.TransformMirror(ray.Polarization, ray.Direction, hit.Normal)
	if reflected := ray.Split(reflectedDir, hit.Point, hit.T, epsAdvance, reflectedPol, r, elementID); passesThreshold(reflected.Intensity, minIntensity) {
		out = append(out, reflected)
	}

	return out
}
