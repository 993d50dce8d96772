package element

import (
	"math"
	"testing"

	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
)

// Scenario C — 50/50 non-polarizing beamsplitter.
func TestInteractBeamsplitter_ScenarioC(t *testing.T) {
	seg := geometry.LineSegment{P1: qmath.NewVec2(50, -20), P2: qmath.NewVec2(50, 20)}
	hit, _ := seg.Intersect(qmath.NewVec2(0, 0), qmath.NewVec2(1, 0))
	el := OpticalElement{ID: 0, Geometry: seg, Properties: optics.BeamsplitterProps{SplitT: 0.5, SplitR: 0.5}}
	ray := core.Ray{Position: qmath.NewVec2(0, 0), Direction: qmath.NewVec2(1, 0), RemainingLength: 200, Intensity: 1.0, Polarization: optics.Horizontal()}

	out := el.Interact(ray, hit, 1e-3, 0.02)
	if len(out) != 2 {
		t.Fatalf("expected two outgoing rays, got %d", len(out))
	}
	for _, r := range out {
		if diff := r.Intensity - 0.5; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("each branch should carry half the intensity, got %v", r.Intensity)
		}
		alpha := core.TerminalAlpha(r.Intensity)
		if alpha != 128 {
			t.Errorf("terminal alpha for intensity 0.5 should be 128, got %d", alpha)
		}
	}
}

// Scenario D — PBS at 45deg geometry with horizontal polarization aligned
// to the transmission axis: full transmission, zero reflection.
func TestInteractBeamsplitter_ScenarioD(t *testing.T) {
	// Normal along (1,1)/sqrt2 means the segment runs along (1,-1)/sqrt2.
	dirVec := qmath.NewVec2(1, -1).Normalize()
	mid := qmath.NewVec2(50, 50)
	half := dirVec.Scale(20)
	seg := geometry.LineSegment{P1: mid.Sub(half), P2: mid.Add(half)}

	el := OpticalElement{ID: 0, Geometry: seg, Properties: optics.BeamsplitterProps{IsPolarizing: true, PBSTransmissionAxisDeg: 0}}
	origin := qmath.NewVec2(0, 0)
	rayDir := qmath.NewVec2(1, 1).Normalize()
	hit, ok := seg.Intersect(origin, rayDir)
	if !ok {
		t.Fatalf("expected intersection")
	}
	ray := core.Ray{Position: origin, Direction: rayDir, RemainingLength: 200, Intensity: 1.0, Polarization: optics.Horizontal()}
	out := el.Interact(ray, hit, 1e-3, 1e-6)

	var transmittedIntensity, reflectedIntensity float64
	for _, r := range out {
		if math.Abs(r.Direction.Sub(rayDir).Length()) < 1e-6 {
			transmittedIntensity = r.Intensity
		} else {
			reflectedIntensity = r.Intensity
		}
	}
	if diff := transmittedIntensity - 1.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("horizontal input aligned with the PBS axis should fully transmit, got %v", transmittedIntensity)
	}
	if reflectedIntensity > 1e-6 {
		t.Errorf("aligned PBS input should reflect nothing, got %v", reflectedIntensity)
	}
}

func TestInteractBeamsplitter_PBS_MalusLaw(t *testing.T) {
	seg := geometry.LineSegment{P1: qmath.NewVec2(50, -20), P2: qmath.NewVec2(50, 20)}
	hit, _ := seg.Intersect(qmath.NewVec2(0, 0), qmath.NewVec2(1, 0))
	el := OpticalElement{ID: 0, Geometry: seg, Properties: optics.BeamsplitterProps{IsPolarizing: true, PBSTransmissionAxisDeg: 30}}
	phi := 10.0
	ray := core.Ray{Position: qmath.NewVec2(0, 0), Direction: qmath.NewVec2(1, 0), RemainingLength: 200, Intensity: 1.0, Polarization: optics.Linear(phi)}
	out := el.Interact(ray, hit, 1e-3, 1e-9)

	wantT := math.Pow(math.Cos(qmath.DegToRad(phi-30)), 2)
	wantR := math.Pow(math.Sin(qmath.DegToRad(phi-30)), 2)
	for _, r := range out {
		if r.Direction.X > 0 {
			if diff := r.Intensity - wantT; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("transmitted fraction should follow Malus's law: want %v got %v", wantT, r.Intensity)
			}
		} else {
			if diff := r.Intensity - wantR; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("reflected fraction should follow Malus's law: want %v got %v", wantR, r.Intensity)
			}
		}
	}
}
