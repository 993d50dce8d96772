// Package optics implements the Jones-calculus polarization kernel and the
// per-element-kind optical property configurations (OpticalProperties):
// pure functions and value types, no ownership of any scene state.
package optics

import (
	"math"
	"math/cmplx"

	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
)

// Polarization is a Jones vector (Ex, Ey): a pair of complex amplitudes
// describing a fully polarized transverse field. Go's built-in complex128
// is used directly rather than a hand-rolled complex type, per the
// language's native support for complex arithmetic.
type Polarization struct {
	Ex, Ey complex128
}

// NewPolarization builds a Polarization from raw components.
func NewPolarization(ex, ey complex128) Polarization {
	return Polarization{Ex: ex, Ey: ey}
}

// Intensity returns |Ex|^2 + |Ey|^2.
func (p Polarization) Intensity() float64 {
	return cmplx.Abs(p.Ex)*cmplx.Abs(p.Ex) + cmplx.Abs(p.Ey)*cmplx.Abs(p.Ey)
}

// Equal reports whether p and other match within tol in both components.
func (p Polarization) Equal(other Polarization, tol float64) bool {
	return cmplx.Abs(p.Ex-other.Ex) <= tol && cmplx.Abs(p.Ey-other.Ey) <= tol
}

// Normalized returns p scaled to unit intensity; the zero Polarization maps
// to itself (callers must reject it — see Validate).
func (p Polarization) Normalized() Polarization {
	n := math.Sqrt(p.Intensity())
	if n < qmath.Epsilon {
		return p
	}
	return Polarization{Ex: p.Ex / complex(n, 0), Ey: p.Ey / complex(n, 0)}
}

// Horizontal returns [1, 0].
func Horizontal() Polarization {
	return Polarization{Ex: 1, Ey: 0}
}

// Vertical returns [0, 1].
func Vertical() Polarization {
	return Polarization{Ex: 0, Ey: 1}
}

// Diagonal45 returns [1, 1]/sqrt(2).
func Diagonal45() Polarization {
	s := complex(1/math.Sqrt2, 0)
	return Polarization{Ex: s, Ey: s}
}

// DiagonalNeg45 returns [1, -1]/sqrt(2).
func DiagonalNeg45() Polarization {
	s := complex(1/math.Sqrt2, 0)
	return Polarization{Ex: s, Ey: -s}
}

// RightCircular returns [1, i]/sqrt(2).
func RightCircular() Polarization {
	s := 1 / math.Sqrt2
	return Polarization{Ex: complex(s, 0), Ey: complex(0, s)}
}

// LeftCircular returns [1, -i]/sqrt(2).
func LeftCircular() Polarization {
	s := 1 / math.Sqrt2
	return Polarization{Ex: complex(s, 0), Ey: complex(0, -s)}
}

// Linear returns [cos(theta), sin(theta)] for a linear polarization at
// angle thetaDeg measured in the lab frame.
func Linear(thetaDeg float64) Polarization {
	rad := qmath.DegToRad(thetaDeg)
	return Polarization{Ex: complex(math.Cos(rad), 0), Ey: complex(math.Sin(rad), 0)}
}

// rotate returns the Jones vector expressed in a frame rotated by
// angleDeg relative to the lab frame (the standard 2x2 Jones rotation
// matrix). A positive angle rotates the basis counter-clockwise.
func rotate(p Polarization, angleDeg float64) Polarization {
	rad := qmath.DegToRad(angleDeg)
	c := complex(math.Cos(rad), 0)
	s := complex(math.Sin(rad), 0)
	return Polarization{
		Ex: c*p.Ex + s*p.Ey,
		Ey: -s*p.Ex + c*p.Ey,
	}
}
