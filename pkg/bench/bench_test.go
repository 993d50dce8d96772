package bench

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/QPG-MIT/optiverse-sub001/pkg/propagate"
)

const tol = 1e-6

func TestMirror_ScenarioA(t *testing.T) {
	elements, sources := Mirror()
	paths, err := propagate.TraceRays(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		t.Fatalf("TraceRays: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("want 1 path, got %d", len(paths))
	}
	path := paths[0]
	if path.RGBA[3] != 255 {
		t.Errorf("want full intensity (alpha 255), got %d", path.RGBA[3])
	}
	want := [][2]float64{{0, 0}, {50, 0}, {-150, 0}}
	if len(path.Points) != len(want) {
		t.Fatalf("want %d points, got %d: %v", len(want), len(path.Points), path.Points)
	}
	for i, w := range want {
		got := path.Points[i]
		if math.Abs(got.X-w[0]) > tol || math.Abs(got.Y-w[1]) > tol {
			t.Errorf("point %d: want %v, got %v", i, w, got)
		}
	}
	// Normal incidence puts the field entirely in the p-component, which
	// TransformMirror negates (a pi phase shift), so horizontal in comes
	// back as horizontal out up to an overall sign: [1,0] -> [-1,0].
	if cmplx.Abs(path.Polarization.Ex+1) > tol || cmplx.Abs(path.Polarization.Ey) > tol {
		t.Errorf("want polarization [-1,0] (p-phase flip at normal incidence), got %+v", path.Polarization)
	}
}

// yAtX linearly interpolates the last segment of points to find y at the
// given x, assuming the terminal segment is a straight line through x.
func yAtX(points []struct{ X, Y float64 }, x float64) float64 {
	p0, p1 := points[len(points)-2], points[len(points)-1]
	if p1.X == p0.X {
		return p0.Y
	}
	frac := (x - p0.X) / (p1.X - p0.X)
	return p0.Y + frac*(p1.Y-p0.Y)
}

func TestLens_ScenarioB(t *testing.T) {
	elements, sources := Lens()
	paths, err := propagate.TraceRays(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		t.Fatalf("TraceRays: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("want 3 paths, got %d", len(paths))
	}
	for i, path := range paths {
		if len(path.Points) != 3 {
			t.Fatalf("path %d: want 3 points, got %d", i, len(path.Points))
		}
		pts := make([]struct{ X, Y float64 }, len(path.Points))
		for j, p := range path.Points {
			pts[j] = struct{ X, Y float64 }{p.X, p.Y}
		}
		y := yAtX(pts, 200)
		if math.Abs(y) > 1e-3 {
			t.Errorf("path %d: want terminal segment through y=0 at x=200, got y=%v", i, y)
		}
	}
}

func TestBeamsplitter_ScenarioC(t *testing.T) {
	elements, sources := Beamsplitter()
	paths, err := propagate.TraceRays(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		t.Fatalf("TraceRays: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("want 2 paths, got %d", len(paths))
	}
	for i, path := range paths {
		if path.RGBA[3] != 128 {
			t.Errorf("path %d: want alpha ~128 (intensity 0.5), got %d", i, path.RGBA[3])
		}
	}
}

func TestPBS_ScenarioD(t *testing.T) {
	elements, sources := PBS()
	paths, err := propagate.TraceRays(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		t.Fatalf("TraceRays: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("want 1 emitted path (reflected branch pruned below threshold), got %d", len(paths))
	}
	if paths[0].RGBA[3] != 255 {
		t.Errorf("want full transmitted intensity (alpha 255), got %d", paths[0].RGBA[3])
	}
}

func TestCurvedMirror_ScenarioE(t *testing.T) {
	elements, sources := CurvedMirror()
	paths, err := propagate.TraceRays(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		t.Fatalf("TraceRays: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("want 3 paths, got %d", len(paths))
	}
	for i, path := range paths {
		if len(path.Points) != 3 {
			t.Fatalf("path %d: want 3 points, got %d", i, len(path.Points))
		}
		pts := make([]struct{ X, Y float64 }, len(path.Points))
		for j, p := range path.Points {
			pts[j] = struct{ X, Y float64 }{p.X, p.Y}
		}
		y := yAtX(pts, 25)
		if math.Abs(y) > 0.5 { // paraxial approximation accuracy, "within a few percent"
			t.Errorf("path %d: want terminal segment through y~0 at x=25, got y=%v", i, y)
		}
	}
}

func TestAchromaticDoublet_ScenarioF(t *testing.T) {
	elements, sources := AchromaticDoublet()
	paths, err := propagate.TraceRays(elements, sources, propagate.DefaultTraceConfig())
	if err != nil {
		t.Fatalf("TraceRays: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("want at least one emitted path")
	}
	// Every emitted path must stay finite; a botched refraction vector
	// formula would surface as NaN long before any focus check.
	for pi, path := range paths {
		for i, p := range path.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("path %d point %d is NaN", pi, i)
			}
		}
	}
}
