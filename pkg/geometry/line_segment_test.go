package geometry

import (
	"math"
	"testing"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

func TestLineSegment_Intersect_Basic(t *testing.T) {
	seg := NewLineSegment(qmath.NewVec2(50, -20), qmath.NewVec2(50, 20))
	hit, ok := seg.Intersect(qmath.NewVec2(0, 0), qmath.NewVec2(1, 0))
	if !ok {
		t.Fatalf("expected a hit")
	}
	if math.Abs(hit.T-50) > 1e-9 {
		t.Errorf("T = %v, want 50", hit.T)
	}
	if math.Abs(hit.Point.X-50) > 1e-9 || math.Abs(hit.Point.Y) > 1e-9 {
		t.Errorf("Point = %v, want (50,0)", hit.Point)
	}
}

func TestLineSegment_Intersect_Parallel(t *testing.T) {
	seg := NewLineSegment(qmath.NewVec2(50, -20), qmath.NewVec2(50, 20))
	_, ok := seg.Intersect(qmath.NewVec2(0, 0), qmath.NewVec2(0, 1))
	if ok {
		t.Errorf("expected no hit for a parallel ray")
	}
}

func TestLineSegment_Intersect_BehindOrigin(t *testing.T) {
	seg := NewLineSegment(qmath.NewVec2(-50, -20), qmath.NewVec2(-50, 20))
	_, ok := seg.Intersect(qmath.NewVec2(0, 0), qmath.NewVec2(1, 0))
	if ok {
		t.Errorf("expected no hit behind the ray origin")
	}
}

func TestLineSegment_Intersect_OffSegment(t *testing.T) {
	seg := NewLineSegment(qmath.NewVec2(50, 5), qmath.NewVec2(50, 20))
	_, ok := seg.Intersect(qmath.NewVec2(0, 0), qmath.NewVec2(1, 0))
	if ok {
		t.Errorf("expected no hit; ray crosses the line outside the segment")
	}
}

func TestLineSegment_Intersect_Grazing(t *testing.T) {
	// ray travels along the segment's own line (tangent to it): parallel miss
	seg := NewLineSegment(qmath.NewVec2(0, 0), qmath.NewVec2(10, 0))
	_, ok := seg.Intersect(qmath.NewVec2(-5, 0), qmath.NewVec2(1, 0))
	if ok {
		t.Errorf("expected a grazing ray along the segment's own line to miss")
	}
}

func TestLineSegment_Normal(t *testing.T) {
	seg := NewLineSegment(qmath.NewVec2(0, -1), qmath.NewVec2(0, 1))
	normal := seg.Normal()
	want := qmath.NewVec2(-1, 0)
	if math.Abs(normal.X-want.X) > 1e-9 || math.Abs(normal.Y-want.Y) > 1e-9 {
		t.Errorf("Normal() = %v, want %v", normal, want)
	}
}
