// Package bench provides named example optical benches, one per
// end-to-end scenario, mirroring the teacher's pkg/scene example-scene
// builders. Each constructor returns the elements and sources pkg/propagate
// needs directly, with no file I/O, so pkg/propagate's integration tests
// and cmd/optitrace's demo mode can both build a scene with one call.
package bench

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

func horizontalSource(pos qmath.Vec2, rayLengthMM, wavelengthNM float64, rgb [3]uint8) source.Source {
	return source.Source{
		Position:     pos,
		AngleDeg:     0,
		NRays:        1,
		RayLengthMM:  rayLengthMM,
		WavelengthNM: wavelengthNM,
		BaseRGB:      rgb,
		Polarization: optics.Horizontal(),
	}
}

// Mirror builds Scenario A: a single flat mirror normal to the axis, one
// ray incident along it. Expected result: a single RayPath reflecting
// straight back, unchanged horizontal polarization, full intensity.
func Mirror() ([]element.OpticalElement, []source.Source) {
	elements := []element.OpticalElement{
		{
			ID:         0,
			Geometry:   geometry.NewLineSegment(qmath.NewVec2(50, -20), qmath.NewVec2(50, 20)),
			Properties: optics.MirrorProps{Reflectivity: 1.0},
		},
	}
	sources := []source.Source{
		horizontalSource(qmath.NewVec2(0, 0), 200, 633, [3]uint8{255, 0, 0}),
	}
	return elements, sources
}

// Lens builds Scenario B: a single thin converging lens, three parallel
// sources straddling the optical axis. Expected result: all three
// terminal segments pass through the focal point at (200, 0).
func Lens() ([]element.OpticalElement, []source.Source) {
	elements := []element.OpticalElement{
		{
			ID:         0,
			Geometry:   geometry.NewLineSegment(qmath.NewVec2(100, -20), qmath.NewVec2(100, 20)),
			Properties: optics.LensProps{EFLmm: 100},
		},
	}
	sources := []source.Source{
		horizontalSource(qmath.NewVec2(0, -10), 300, 550, [3]uint8{0, 255, 0}),
		horizontalSource(qmath.NewVec2(0, 0), 300, 550, [3]uint8{0, 255, 0}),
		horizontalSource(qmath.NewVec2(0, 10), 300, 550, [3]uint8{0, 255, 0}),
	}
	return elements, sources
}

// Beamsplitter builds Scenario C: a 50/50 non-polarizing beamsplitter.
// Expected result: two RayPaths, each at half intensity (alpha 128).
func Beamsplitter() ([]element.OpticalElement, []source.Source) {
	elements := []element.OpticalElement{
		{
			ID:         0,
			Geometry:   geometry.NewLineSegment(qmath.NewVec2(50, -20), qmath.NewVec2(50, 20)),
			Properties: optics.BeamsplitterProps{SplitT: 0.5, SplitR: 0.5},
		},
	}
	sources := []source.Source{
		horizontalSource(qmath.NewVec2(0, 0), 200, 550, [3]uint8{255, 255, 255}),
	}
	return elements, sources
}

// PBS builds Scenario D: a polarizing beamsplitter whose transmission
// axis is aligned with the source's horizontal polarization, oriented so
// its normal is along (1,1)/sqrt(2). Expected result: full transmission,
// zero reflected intensity.
func PBS() ([]element.OpticalElement, []source.Source) {
	// A segment with tangent (1,-1)/sqrt(2) has normal tangent.Perp() =
	// (1,1)/sqrt(2), matching the scenario's stated normal direction.
	const half = 20.0
	center := qmath.NewVec2(50, 0)
	tangent := qmath.NewVec2(1, -1).Normalize()
	p1 := center.Sub(tangent.Scale(half))
	p2 := center.Add(tangent.Scale(half))

	elements := []element.OpticalElement{
		{
			ID:         0,
			Geometry:   geometry.NewLineSegment(p1, p2),
			Properties: optics.BeamsplitterProps{IsPolarizing: true, PBSTransmissionAxisDeg: 0},
		},
	}
	sources := []source.Source{
		horizontalSource(qmath.NewVec2(0, 0), 200, 550, [3]uint8{255, 255, 255}),
	}
	return elements, sources
}

// CurvedMirror builds Scenario E: a concave curved mirror, three parallel
// axial rays. Expected result: all three converge near the focal point at
// half the radius, (25, 0).
func CurvedMirror() ([]element.OpticalElement, []source.Source) {
	elements := []element.OpticalElement{
		{
			ID:         0,
			Geometry:   geometry.NewCurvedSegment(qmath.NewVec2(50, -10), qmath.NewVec2(50, 10), 50),
			Properties: optics.MirrorProps{Reflectivity: 1.0},
		},
	}
	sources := []source.Source{
		horizontalSource(qmath.NewVec2(0, -5), 200, 550, [3]uint8{0, 200, 255}),
		horizontalSource(qmath.NewVec2(0, 0), 200, 550, [3]uint8{0, 200, 255}),
		horizontalSource(qmath.NewVec2(0, 5), 200, 550, [3]uint8{0, 200, 255}),
	}
	return elements, sources
}

// AchromaticDoublet builds Scenario F: three refractive interfaces in
// series approximating an achromatic doublet lens, a collimated fan of
// five parallel rays. Expected result: all rays converge toward a focus
// near x=100mm, with low-intensity Fresnel reflections at each surface.
func AchromaticDoublet() ([]element.OpticalElement, []source.Source) {
	const aperture = 6.35
	surfaces := []struct {
		x      float64
		radius float64
		n1, n2 float64
	}{
		{x: 0, radius: 66.7, n1: 1.0, n2: 1.65},
		{x: 4, radius: -53.7, n1: 1.65, n2: 1.81},
		{x: 5.5, radius: -259.4, n1: 1.81, n2: 1.0},
	}

	// Each chord runs from +aperture down to -aperture, so its signed normal
	// points along +x: a positive radius puts the center of curvature
	// downstream, and N1 is the medium the rays arrive from.
	elements := make([]element.OpticalElement, len(surfaces))
	for i, s := range surfaces {
		elements[i] = element.OpticalElement{
			ID:         i,
			Geometry:   geometry.NewCurvedSegment(qmath.NewVec2(s.x, aperture), qmath.NewVec2(s.x, -aperture), s.radius),
			Properties: optics.RefractiveProps{N1: s.n1, N2: s.n2},
		}
	}

	sources := make([]source.Source, 5)
	ys := []float64{-5, -2.5, 0, 2.5, 5}
	for i, y := range ys {
		sources[i] = horizontalSource(qmath.NewVec2(-20, y), 200, 855, [3]uint8{255, 0, 255})
	}
	return elements, sources
}
