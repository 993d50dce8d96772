package element

import (
	gomath "math"

	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// interactRefractive implements a Snell/Fresnel dielectric interface.
// N1 is the index on the segment's -normal side, N2 on the +normal side;
// the side the ray arrives from is determined by the sign of
// ray.direction . hit.normal.
func interactRefractive(ray core.Ray, hit geometry.Hit, p optics.RefractiveProps, epsAdvance, minIntensity float64, elementID int) []core.Ray {
	var nIncident, nTransmitted float64
	// effNormal always points back against the incident ray, the standard
	// convention for the vector refraction formula below.
	effNormal := hit.Normal
	if ray.Direction.Dot(hit.Normal) > 0 {
		nIncident, nTransmitted = p.N1, p.N2
		effNormal = hit.Normal.Negate()
	} else {
		nIncident, nTransmitted = p.N2, p.N1
	}

	cosI := -ray.Direction.Dot(effNormal)
	eta := nIncident / nTransmitted
	sin2T := eta * eta * (1 - cosI*cosI)

	if sin2T > 1 {
		// Total internal reflection: only a reflected ray, full intensity.
		newDir := qmath.Reflect(ray.Direction, hit.Normal)
		newPol := optics.TransformMirror(ray.Polarization, ray.Direction, hit.Normal)
		child := ray.Split(newDir, hit.Point, hit.T, epsAdvance, newPol, 1.0, elementID)
		if !passesThreshold(child.Intensity, minIntensity) {
			return nil
		}
		return []core.Ray{child}
	}

	cosT := gomath.Sqrt(1 - sin2T)
	rs, rp := fresnelAmplitudes(nIncident, nTransmitted, cosI, cosT)

	var out []core.Ray

	reflectedDir := qmath.Reflect(ray.Direction, hit.Normal)
	reflectedPol, reflectedFactor := optics.TransformRefractive(ray.Polarization, hit.Normal, rs, rp, optics.Reflected)
	if reflected := ray.Split(reflectedDir, hit.Point, hit.T, epsAdvance, reflectedPol, reflectedFactor, elementID); passesThreshold(reflected.Intensity, minIntensity) {
		out = append(out, reflected)
	}

	transmittedDir := ray.Direction.Scale(eta).Add(effNormal.Scale(eta*cosI - cosT)).Normalize()
	transmittedPol, transmittedFactor := optics.TransformRefractive(ray.Polarization, hit.Normal, rs, rp, optics.Transmitted)
	if transmitted := ray.Split(transmittedDir, hit.Point, hit.T, epsAdvance, transmittedPol, transmittedFactor, elementID); passesThreshold(transmitted.Intensity, minIntensity) {
		out = append(out, transmitted)
	}

	return out
}

// fresnelAmplitudes computes the standard s/p amplitude reflection
// coefficients at a dielectric interface.
func fresnelAmplitudes(n1, n2, cosI, cosT float64) (rs, rp float64) {
	rs = (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rp = (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT)
	return rs, rp
}
