package source

import (
	"math"
	"testing"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

func TestSource_ZeroSpreadSingleRay(t *testing.T) {
	s := Source{Position: qmath.NewVec2(0, 0), AngleDeg: 0, SpreadDeg: 0, NRays: 1, SizeMM: 0, RayLengthMM: 200, Polarization: optics.Horizontal()}
	rays := s.Sample()
	if len(rays) != 1 {
		t.Fatalf("expected exactly one ray, got %d", len(rays))
	}
	if rays[0].Position != s.Position {
		t.Errorf("single ray should start at the source position, got %+v", rays[0].Position)
	}
	if math.Abs(rays[0].Direction.X-1) > 1e-9 || math.Abs(rays[0].Direction.Y) > 1e-9 {
		t.Errorf("expected direction (1,0), got %+v", rays[0].Direction)
	}
}

func TestSource_DirectionsAreUnitLength(t *testing.T) {
	s := Source{Position: qmath.NewVec2(5, 5), AngleDeg: 37, SpreadDeg: 20, NRays: 7, SizeMM: 10, RayLengthMM: 100}
	for _, r := range s.Sample() {
		if diff := r.Direction.Length() - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("sampled direction must be unit length, got %v", r.Direction.Length())
		}
	}
}

func TestSource_SizeFanSpreadsPositionsPerpendicularToAngle(t *testing.T) {
	s := Source{Position: qmath.NewVec2(0, 0), AngleDeg: 0, SpreadDeg: 0, NRays: 3, SizeMM: 20, RayLengthMM: 100}
	rays := s.Sample()
	if len(rays) != 3 {
		t.Fatalf("expected 3 rays, got %d", len(rays))
	}
	wantYs := []float64{-10, 0, 10}
	for i, want := range wantYs {
		if diff := rays[i].Position.Y - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("ray %d: expected y=%v, got %v", i, want, rays[i].Position.Y)
		}
		if math.Abs(rays[i].Position.X) > 1e-9 {
			t.Errorf("ray %d: expected x=0 (angle 0 deg fan is purely transverse), got %v", i, rays[i].Position.X)
		}
	}
}

func TestSource_PathPointsStartAtSourcePosition(t *testing.T) {
	s := Source{Position: qmath.NewVec2(3, 4), AngleDeg: 90, SpreadDeg: 0, NRays: 1, RayLengthMM: 50}
	rays := s.Sample()
	if len(rays[0].PathPoints) != 1 || rays[0].PathPoints[0] != s.Position {
		t.Errorf("path should start with the sampled source position, got %+v", rays[0].PathPoints)
	}
}
