package optics

import (
	"testing"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

func TestTransformMirror_HorizontalSurfaceFlipsVertical(t *testing.T) {
	normal := qmath.NewVec2(0, 1)
	dirIn := qmath.NewVec2(1, 0)
	out := TransformMirror(Horizontal(), dirIn, normal)
	if !out.Equal(Horizontal(), 1e-9) {
		t.Errorf("s-component (tangent to a horizontal surface) should pass through unchanged, got %+v", out)
	}
	out = TransformMirror(Vertical(), dirIn, normal)
	if out.Intensity() < 1-1e-9 || out.Intensity() > 1+1e-9 {
		t.Errorf("mirror reflection must conserve intensity, got %v", out.Intensity())
	}
}

func TestTransformBeamsplitter_NonPolarizing_SplitsIntensityOnly(t *testing.T) {
	in := Diagonal45()
	outT, fT := TransformBeamsplitter(in, qmath.NewVec2(1, 0), qmath.NewVec2(0, 1), false, 0, 0.6, 0.4, Transmitted)
	_, fR := TransformBeamsplitter(in, qmath.NewVec2(1, 0), qmath.NewVec2(0, 1), false, 0, 0.6, 0.4, Reflected)
	if fT != 0.6 || fR != 0.4 {
		t.Errorf("non-polarizing split fractions should pass through unchanged: got fT=%v fR=%v", fT, fR)
	}
	if !outT.Equal(in, 1e-9) {
		t.Errorf("non-polarizing transmitted branch should leave polarization unchanged, got %+v", outT)
	}
}

func TestTransformBeamsplitter_PBS_MalusLaw(t *testing.T) {
	// Horizontal input against a PBS transmission axis at 45 deg splits evenly.
	outT, fT := TransformBeamsplitter(Horizontal(), qmath.NewVec2(1, 0), qmath.NewVec2(0, 1), true, 45, 0, 0, Transmitted)
	_, fR := TransformBeamsplitter(Horizontal(), qmath.NewVec2(1, 0), qmath.NewVec2(0, 1), true, 45, 0, 0, Reflected)
	if diff := fT - 0.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("45 deg PBS axis against horizontal input should transmit half the intensity, got %v", fT)
	}
	if diff := (fT + fR) - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("PBS transmitted+reflected fractions must sum to 1, got %v", fT+fR)
	}
	if outT.Intensity() < 1e-9 {
		t.Errorf("transmitted branch should carry nonzero field when fT>0")
	}
}

func TestTransformBeamsplitter_PBS_AlignedAxisFullyTransmits(t *testing.T) {
	outT, fT := TransformBeamsplitter(Horizontal(), qmath.NewVec2(1, 0), qmath.NewVec2(0, 1), true, 0, 0, 0, Transmitted)
	_, fR := TransformBeamsplitter(Horizontal(), qmath.NewVec2(1, 0), qmath.NewVec2(0, 1), true, 0, 0, 0, Reflected)
	if diff := fT - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("horizontal input aligned with a 0 deg PBS axis should fully transmit, got %v", fT)
	}
	if fR > 1e-9 {
		t.Errorf("aligned PBS should reflect nothing, got %v", fR)
	}
	if !outT.Equal(Horizontal(), 1e-9) {
		t.Errorf("fully transmitted branch should be unchanged, got %+v", outT)
	}
}

func TestTransformWaveplate_HalfWaveAt45FlipsPolarization(t *testing.T) {
	out := TransformWaveplate(Horizontal(), 180, 45)
	if !out.Equal(Vertical(), 1e-9) {
		t.Errorf("half-wave plate at 45 deg should rotate horizontal to vertical, got %+v", out)
	}
}

func TestTransformWaveplate_QuarterWaveTwiceEqualsHalfWave(t *testing.T) {
	once := TransformWaveplate(Horizontal(), 90, 0)
	twice := TransformWaveplate(once, 90, 0)
	half := TransformWaveplate(Horizontal(), 180, 0)
	if !twice.Equal(half, 1e-9) {
		t.Errorf("two quarter-wave passes should equal one half-wave pass, got %+v vs %+v", twice, half)
	}
}

func TestTransformWaveplate_PreservesIntensity(t *testing.T) {
	out := TransformWaveplate(Diagonal45(), 73, 17)
	if diff := out.Intensity() - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("a retarder must conserve intensity, got %v", out.Intensity())
	}
}

func TestDichroicTransmission_LongpassMonotonic(t *testing.T) {
	low := DichroicTransmission(400, 500, 20, Longpass)
	mid := DichroicTransmission(500, 500, 20, Longpass)
	high := DichroicTransmission(600, 500, 20, Longpass)
	if !(low < mid && mid < high) {
		t.Errorf("longpass transmission should increase with wavelength: low=%v mid=%v high=%v", low, mid, high)
	}
	if diff := mid - 0.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("transmission at the cutoff wavelength should be exactly 0.5, got %v", mid)
	}
}

func TestDichroicTransmission_ShortpassIsComplementOfLongpass(t *testing.T) {
	lp := DichroicTransmission(450, 500, 20, Longpass)
	sp := DichroicTransmission(450, 500, 20, Shortpass)
	if diff := (lp + sp) - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("shortpass and longpass transmissions at the same wavelength should sum to 1, got %v", lp+sp)
	}
}

func TestDichroicTransmission_ZeroWidthIsHardStep(t *testing.T) {
	below := DichroicTransmission(499, 500, 0, Longpass)
	above := DichroicTransmission(501, 500, 0, Longpass)
	if below != 0 || above != 1 {
		t.Errorf("zero transition width should behave as a hard step, got below=%v above=%v", below, above)
	}
}
