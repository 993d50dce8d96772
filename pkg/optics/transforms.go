package optics

import (
	"math"
	"math/cmplx"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// Branch distinguishes the transmitted and reflected outputs of a
// beamsplitter interaction.
type Branch int

const (
	Transmitted Branch = iota
	Reflected
)

// TransformMirror applies the law of reflection for a perfect conductor: the
// component along the surface tangent (s-polarization) passes unchanged,
// the component along the in-plane p-reference picks up a pi phase shift.
// directionIn is accepted to match the documented signature but is not
// needed by the 2D tangent/normal decomposition used here.
func TransformMirror(p Polarization, directionIn, normal qmath.Vec2) Polarization {
	tangentAngleDeg := tangentFrameAngleDeg(normal)
	local := rotate(p, tangentAngleDeg) // Ex=s (tangent), Ey=p (normal)
	local.Ey = -local.Ey                // phase shift of pi
	return rotate(local, -tangentAngleDeg)
}

// tangentFrameAngleDeg is the lab-frame angle, in degrees, of the surface
// tangent at a hit point given its normal (tangent = normal rotated -90deg).
// rotate(p, tangentFrameAngleDeg(normal)) expresses a Jones vector with
// Ex along the tangent (s) and Ey along the normal (p).
func tangentFrameAngleDeg(normal qmath.Vec2) float64 {
	return qmath.RadToDeg(math.Atan2(-normal.X, normal.Y))
}

// TransformLens is the identity: thin-lens refraction does not affect
// polarization at the paraxial level.
func TransformLens(p Polarization) Polarization {
	return p
}

// TransformBeamsplitter computes the outgoing polarization and intensity
// factor for one branch of a beamsplitter interaction. For a
// non-polarizing splitter, splitT/splitR are the configured fractions; for
// a polarizing one they are ignored in favor of a Malus's-law projection
// onto the lab-frame axis at pbsAxisDeg (transmission) and its
// perpendicular (reflection).
func TransformBeamsplitter(p Polarization, directionIn, normal qmath.Vec2, isPolarizing bool, pbsAxisDeg, splitT, splitR float64, branch Branch) (Polarization, float64) {
	if !isPolarizing {
		if branch == Transmitted {
			return p, splitT
		}
		return TransformMirror(p, directionIn, normal), splitR
	}

	projected := rotate(p, pbsAxisDeg) // Ex = along pbs axis (Ep), Ey = perpendicular (Es)
	ep2 := cmplx.Abs(projected.Ex) * cmplx.Abs(projected.Ex)
	es2 := cmplx.Abs(projected.Ey) * cmplx.Abs(projected.Ey)
	total := ep2 + es2
	if total < qmath.Epsilon {
		total = qmath.Epsilon
	}

	if branch == Transmitted {
		local := Polarization{Ex: unitPhase(projected.Ex), Ey: 0}
		return rotate(local, -pbsAxisDeg), ep2 / total
	}
	local := Polarization{Ex: 0, Ey: unitPhase(projected.Ey)}
	return rotate(local, -pbsAxisDeg), es2 / total
}

// unitPhase returns c scaled to unit modulus, preserving its phase; the
// zero complex number maps to 1 (an arbitrary reference phase, since the
// component carries no energy and intensity_factor will be zero anyway).
func unitPhase(c complex128) complex128 {
	m := cmplx.Abs(c)
	if m < qmath.Epsilon {
		return 1
	}
	return c / complex(m, 0)
}

// TransformRefractive computes the outgoing polarization and intensity
// factor for one branch (transmitted or reflected) of a Snell/Fresnel
// interaction, given the real amplitude reflection coefficients rs, rp
// (s- and p-polarized, signed per the standard Fresnel formulas) at the
// interface. The s/p basis is the same tangent/normal frame TransformMirror
// uses. Ts, Tp follow as 1-rs^2, 1-rp^2 per the spec's Fresnel relations.
func TransformRefractive(p Polarization, normal qmath.Vec2, rs, rp float64, branch Branch) (Polarization, float64) {
	tangentAngleDeg := tangentFrameAngleDeg(normal)
	local := rotate(p, tangentAngleDeg) // Ex=s (tangent), Ey=p (normal)

	es2 := cmplx.Abs(local.Ex) * cmplx.Abs(local.Ex)
	ep2 := cmplx.Abs(local.Ey) * cmplx.Abs(local.Ey)
	total := es2 + ep2
	if total < qmath.Epsilon {
		total = qmath.Epsilon
	}

	rS, rP := rs*rs, rp*rp
	if branch == Reflected {
		factor := (es2*rS + ep2*rP) / total
		out := Polarization{Ex: complex(rs, 0) * local.Ex, Ey: complex(rp, 0) * local.Ey}
		return rotate(out.Normalized(), -tangentAngleDeg), factor
	}
	tS, tP := 1-rS, 1-rP
	factor := (es2*tS + ep2*tP) / total
	out := Polarization{Ex: complex(math.Sqrt(math.Max(tS, 0)), 0) * local.Ex, Ey: complex(math.Sqrt(math.Max(tP, 0)), 0) * local.Ey}
	return rotate(out.Normalized(), -tangentAngleDeg), factor
}

// TransformWaveplate applies a retarder: the Jones vector is rotated into
// the fast-axis frame, the slow-axis (perpendicular) component picks up
// exp(i*phaseShiftRad), and the result is rotated back to the lab frame.
// Intensity is preserved exactly since the phase factor has unit modulus.
func TransformWaveplate(p Polarization, phaseShiftDeg, fastAxisDeg float64) Polarization {
	local := rotate(p, fastAxisDeg)
	phase := cmplx.Exp(complex(0, qmath.DegToRad(phaseShiftDeg)))
	local.Ey = local.Ey * phase
	return rotate(local, -fastAxisDeg)
}

// DichroicTransmission returns the transmitted fraction T at wavelengthNM
// for a dichroic with the given cutoff and 10%-90% transition width, using
// a tanh S-curve that is monotonic and crosses 0.5 exactly at cutoffNM.
func DichroicTransmission(wavelengthNM, cutoffNM, transitionWidthNM float64, passType PassType) float64 {
	var longpass float64
	if transitionWidthNM <= 0 {
		if wavelengthNM >= cutoffNM {
			longpass = 1
		} else {
			longpass = 0
		}
	} else {
		longpass = 0.5 * (1 + math.Tanh((wavelengthNM-cutoffNM)/(transitionWidthNM/2)))
	}
	if passType == Longpass {
		return longpass
	}
	return 1 - longpass
}
