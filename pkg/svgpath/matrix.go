package svgpath

import (
	"math"
)

// Matrix is a 2D affine transform:
//
//	⎡ A  C  E ⎤
//	⎢ B  D  F ⎥
//	⎣ 0  0  1 ⎦
type Matrix struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

// Identity returns the no-op transform.
func Identity() Matrix {
	return Matrix{
		A: 1, C: 0, E: 0,
		B: 0, D: 1, F: 0,
	}
}

func Translate(tx, ty float64) Matrix {
	return Matrix{
		A: 1, C: 0, E: tx,
		B: 0, D: 1, F: ty,
	}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{
		A: sx, C: 0, E: 0,
		B: 0, D: sy, F: 0,
	}
}

// Rotate returns a rotation about the origin. The angle is in degrees;
// positive angles turn +x towards +y.
func Rotate(degrees float64) Matrix {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Matrix{
		A: cos, C: -sin, E: 0,
		B: sin, D: cos, F: 0,
	}
}

// RotateAbout returns a rotation of the given degrees about (cx, cy).
func RotateAbout(degrees, cx, cy float64) Matrix {
	// Move the pivot to the origin, rotate, move it back.
	return Compose(Compose(Translate(cx, cy), Rotate(degrees)), Translate(-cx, -cy))
}

func SkewX(degrees float64) Matrix {
	return Matrix{
		A: 1, C: math.Tan(degrees * math.Pi / 180), E: 0,
		B: 0, D: 1, F: 0,
	}
}

func SkewY(degrees float64) Matrix {
	return Matrix{
		A: 1, C: 0, E: 0,
		B: math.Tan(degrees * math.Pi / 180), D: 1, F: 0,
	}
}

// Multiply returns m·other: other is applied to a point first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Compose returns the matrix of the transform list "outer inner", the way
// a transform attribute nests coordinate systems: inner maps a point into
// the coordinate system established by outer.
//
// Note the argument order: the second argument is applied to a point
// first. To apply m1 and then m2, call Compose(m2, m1).
func Compose(outer, inner Matrix) Matrix {
	return outer.Multiply(inner)
}

// IsIdentity reports whether m is exactly the identity, without tolerance.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only translates.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

func (m Matrix) transformX(x, y float64) float64 {
	return m.A*x + m.C*y + m.E
}

func (m Matrix) transformY(x, y float64) float64 {
	return m.B*x + m.D*y + m.F
}

func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.transformX(x, y), m.transformY(x, y)
}

// TransformLength returns the length of the offset (length, 0) once it has
// been through the linear part of m.
func (m Matrix) TransformLength(length float64) float64 {
	x1, y1 := m.TransformPoint(0, 0)
	x2, y2 := m.TransformPoint(length, 0)
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// AxisScale returns how much m stretches the unit x and unit y offsets.
func (m Matrix) AxisScale() (float64, float64) {
	return math.Hypot(m.A, m.B), math.Hypot(m.C, m.D)
}
