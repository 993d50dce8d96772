package core

import (
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// Ray is the propagation engine's mutable working record for one ray in
// flight. It is never mutated in place once pushed onto the work stack;
// every interaction produces fresh descendants via Split.
type Ray struct {
	Position        qmath.Vec2
	Direction       qmath.Vec2 // unit length by convention
	RemainingLength float64    // max additional path length before forced termination
	Intensity       float64    // in [0,1], attenuated multiplicatively by each interaction
	Polarization    optics.Polarization
	WavelengthNM    float64
	BaseRGB         [3]uint8 // source-supplied base color, carried unchanged
	Events          uint32   // count of interactions suffered so far
	PathPoints      []qmath.Vec2
	LastHit         *int // identity of the element this ray was last emitted from, if any
}

// Split produces a fresh descendant ray that starts at hitPoint advanced
// by epsAdvance along newDirection, with traveled subtracted from
// RemainingLength, carrying the given polarization and an intensity
// scaled by intensityFactor. The parent's
// PathPoints are copied (not aliased) so that sibling descendants of a
// beam-splitting event do not share a backing array.
func (r Ray) Split(newDirection qmath.Vec2, hitPoint qmath.Vec2, traveled float64, epsAdvance float64, newPolarization optics.Polarization, intensityFactor float64, hitElement int) Ray {
	points := make([]qmath.Vec2, len(r.PathPoints))
	copy(points, r.PathPoints)

	return Ray{
		Position:        hitPoint.Add(newDirection.Scale(epsAdvance)),
		Direction:       newDirection,
		RemainingLength: r.RemainingLength - traveled,
		Intensity:       r.Intensity * intensityFactor,
		Polarization:    newPolarization,
		WavelengthNM:    r.WavelengthNM,
		BaseRGB:         r.BaseRGB,
		Events:          r.Events + 1,
		PathPoints:      points,
		LastHit:         &hitElement,
	}
}

// AppendPoint returns a copy of the ray with point appended to PathPoints.
func (r Ray) AppendPoint(point qmath.Vec2) Ray {
	points := make([]qmath.Vec2, len(r.PathPoints), len(r.PathPoints)+1)
	copy(points, r.PathPoints)
	points = append(points, point)
	r.PathPoints = points
	return r
}

// RayPath is the terminal output of one traced ray: its polyline vertex
// sequence plus the display/physics state it carried at termination.
type RayPath struct {
	Points       []qmath.Vec2
	RGBA         [4]uint8
	Polarization optics.Polarization
	WavelengthNM float64
}

// TerminalAlpha encodes intensity (clamped to [0,1]) as the alpha byte used
// in RayPath.RGBA: round(255 * clamp(intensity, 0, 1)).
func TerminalAlpha(intensity float64) uint8 {
	clamped := qmath.Clamp(intensity, 0, 1)
	return uint8(clamped*255 + 0.5)
}
