package propagate

import (
	"fmt"
	"strings"

	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

// ValidationError aggregates every malformed-input violation found by
// Validate; no partial tracing occurs once any violation is present.
type ValidationError []string

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid trace input: %s", strings.Join(e, "; "))
}

// Validate checks elements and sources for the malformed-input conditions
// and returns a ValidationError listing every violation found, or nil.
func Validate(elements []element.OpticalElement, sources []source.Source) error {
	var errs ValidationError

	for _, el := range elements {
		switch g := el.Geometry.(type) {
		case geometry.LineSegment:
			if g.P1.Sub(g.P2).Length() < qmath.Epsilon {
				errs = append(errs, fmt.Sprintf("element %d: coincident endpoints", el.ID))
			}
		case geometry.CurvedSegment:
			if g.P1.Sub(g.P2).Length() < qmath.Epsilon {
				errs = append(errs, fmt.Sprintf("element %d: coincident endpoints", el.ID))
			}
			if !g.ValidRadius() {
				errs = append(errs, fmt.Sprintf("element %d: radius of curvature smaller than half the chord length", el.ID))
			}
		}

		if bs, ok := el.Properties.(optics.BeamsplitterProps); ok && !bs.IsPolarizing {
			if bs.SplitT+bs.SplitR > 1+qmath.Epsilon {
				errs = append(errs, fmt.Sprintf("element %d: split_T + split_R exceeds 1", el.ID))
			}
		}
	}

	for i, src := range sources {
		if src.NRays < 1 {
			errs = append(errs, fmt.Sprintf("source %d: n_rays must be at least 1", i))
		}
		if src.Polarization.Intensity() < qmath.Epsilon {
			errs = append(errs, fmt.Sprintf("source %d: polarization Jones vector has zero norm", i))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
