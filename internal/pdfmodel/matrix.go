package pdfmodel

import (
	"fmt"
	"math"
)

// Matrix is a 2-D affine transform encoded as 6 doubles, matching PDF's
// CTM convention:
//
//	[ a  b  0 ]
//	[ c  d  0 ]
//	[ e  f  1 ]
type Matrix struct {
	A, B, C, D, E, F float64
}

func Identity() Matrix { return Matrix{A: 1, D: 1} }

func Translation(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

func Scaling(sx, sy float64) Matrix { return Matrix{A: sx, D: sy} }

func Rotation(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply composes this*other, matching the PDF "cm" semantics where
// CTM_new = cm x CTM_old (right multiply in row-vector convention).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// TransformDistance applies only the linear part (no translation).
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.A*dx + m.C*dy, m.B*dx + m.D*dy
}

func (m Matrix) Translate(tx, ty float64) Matrix { return m.Multiply(Translation(tx, ty)) }
func (m Matrix) Scale(sx, sy float64) Matrix      { return m.Multiply(Scaling(sx, sy)) }

// PreservesVerticalAxis reports whether this matrix keeps text upright
// (no rotation/skew component), used to derive Char.Upright.
func (m Matrix) PreservesVerticalAxis() bool {
	return m.B == 0 && m.C == 0 && m.A > 0 && m.D > 0
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f %.4f %.4f %.4f]", m.A, m.B, m.C, m.D, m.E, m.F)
}
