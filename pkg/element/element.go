// Package element implements the element library: one interaction
// implementation per OpticalProperties kind. Each computes the set of
// outgoing rays produced by one incoming ray striking one intersection,
// the same per-kind-dispatch shape as the teacher's pkg/material
// Scatter methods, but driven by a type switch over the closed
// optics.Properties sum type rather than one struct per material.
package element

import (
	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// OpticalElement is a geometry segment paired with its optical
// properties. ID is the element's index into the caller's slice and is
// the identity used for last-hit exclusion (core.Ray.LastHit).
type OpticalElement struct {
	ID         int
	Geometry   geometry.Segment
	Properties optics.Properties
}

// Interact dispatches to the per-kind implementation and returns the
// zero-or-more descendant rays produced by ray striking hit on this
// element. A returned empty slice means the ray terminates here. The
// caller must have already appended hit.Point to ray.PathPoints.
func (e OpticalElement) Interact(ray core.Ray, hit geometry.Hit, epsAdvance, minIntensity float64) []core.Ray {
	switch p := e.Properties.(type) {
	case optics.LensProps:
		return interactLens(ray, hit, p, epsAdvance, minIntensity, e.ID)
	case optics.MirrorProps:
		return interactMirror(ray, hit, p, epsAdvance, minIntensity, e.ID)
	case optics.RefractiveProps:
		return interactRefractive(ray, hit, p, epsAdvance, minIntensity, e.ID)
	case optics.BeamsplitterProps:
		return interactBeamsplitter(ray, hit, p, epsAdvance, minIntensity, e.ID)
	case optics.WaveplateProps:
		return interactWaveplate(ray, hit, p, epsAdvance, minIntensity, e.ID)
	case optics.DichroicProps:
		return interactDichroic(ray, hit, p, epsAdvance, minIntensity, e.ID)
	default:
		return nil
	}
}

// ChangesPolarization reports whether this element's kind requires the
// propagation engine to emit the incoming ray's path at its
// pre-interaction polarization before pushing descendants. This applies
// only to a single continuing ray whose polarization is rewritten in
// place (a waveplate): without the extra emission, the one surviving
// RayPath would retroactively show its new polarization for the
// pre-interaction segment too, since core.RayPath carries a single
// Polarization value for the whole polyline. A beamsplitter (polarizing
// or not) always produces independent descendant rays instead, each
// already a complete, standalone path once it terminates, so no
// separate stub is needed for it.
func (e OpticalElement) ChangesPolarization() bool {
	_, ok := e.Properties.(optics.WaveplateProps)
	return ok
}

// passesThreshold is the sub-threshold check every interact implementation
// applies before pushing a descendant ray.
func passesThreshold(intensity, minIntensity float64) bool {
	return intensity >= minIntensity
}
