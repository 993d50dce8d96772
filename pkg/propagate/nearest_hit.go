package propagate

import (
	gomath "math"

	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// nearestHitLinear is the specification's reference nearest-hit search: an
// O(n_elements) scan skipping the last-hit element. Ties within epsilon of
// t are broken in favor of the candidate whose SegParam is more interior
// (further from 0 or 1), per the endpoint-grazing tie-break rule.
func nearestHitLinear(origin, dir qmath.Vec2, elements []element.OpticalElement, lastHit *int) (element.OpticalElement, geometry.Hit, bool) {
	var best element.OpticalElement
	var bestHit geometry.Hit
	found := false

	for _, e := range elements {
		if lastHit != nil && *lastHit == e.ID {
			continue
		}
		hit, ok := e.Geometry.Intersect(origin, dir)
		if !ok {
			continue
		}
		considerCandidate(e, hit, &best, &bestHit, &found)
	}
	return best, bestHit, found
}

// considerCandidate updates best/bestHit/found if hit is closer than the
// current best, or ties it within tolerance and is more interior.
func considerCandidate(e element.OpticalElement, hit geometry.Hit, best *element.OpticalElement, bestHit *geometry.Hit, found *bool) {
	if !*found {
		*best, *bestHit, *found = e, hit, true
		return
	}
	if hit.T < bestHit.T-qmath.Epsilon {
		*best, *bestHit = e, hit
		return
	}
	if gomath.Abs(hit.T-bestHit.T) <= qmath.Epsilon && interiority(hit.SegParam) > interiority(bestHit.SegParam) {
		*best, *bestHit = e, hit
	}
}

// interiority is larger the further u is from either segment endpoint.
func interiority(u float64) float64 {
	return gomath.Min(u, 1-u)
}
