// Package source implements the emitter configuration and ray sampling:
// fanning starting positions across a source's transverse size and
// starting directions across its angular spread, the way the teacher's
// pkg/lights samples positions/directions from an emitter shape.
package source

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// Source is a ray emitter configuration: not an entity with a lifecycle,
// just sampling parameters read once per trace.
type Source struct {
	Position     qmath.Vec2
	AngleDeg     float64
	SpreadDeg    float64
	NRays        uint32
	SizeMM       float64
	RayLengthMM  float64
	WavelengthNM float64
	BaseRGB      [3]uint8
	Polarization optics.Polarization
}

// Sample returns s.NRays starting rays, fanned in lockstep: ray i's
// transverse offset and angular offset both use the same fractional
// position i/(NRays-1) - 0.5 across the source's size and spread. A
// single ray (NRays==1) starts exactly at Position along AngleDeg.
func (s Source) Sample() []core.Ray {
	rays := make([]core.Ray, 0, s.NRays)
	forward := qmath.Rotate2(qmath.NewVec2(1, 0), qmath.DegToRad(s.AngleDeg))
	perp := forward.Perp()

	for i := uint32(0); i < s.NRays; i++ {
		frac := 0.0
		if s.NRays > 1 {
			frac = float64(i)/float64(s.NRays-1) - 0.5
		}

		pos := s.Position.Add(perp.Scale(frac * s.SizeMM))
		angle := s.AngleDeg + frac*s.SpreadDeg
		dir := qmath.Rotate2(qmath.NewVec2(1, 0), qmath.DegToRad(angle))

		rays = append(rays, core.Ray{
			Position:        pos,
			Direction:       dir,
			RemainingLength: s.RayLengthMM,
			Intensity:       1.0,
			Polarization:    s.Polarization,
			WavelengthNM:    s.WavelengthNM,
			BaseRGB:         s.BaseRGB,
			Events:          0,
			PathPoints:      []qmath.Vec2{pos},
		})
	}
	return rays
}
