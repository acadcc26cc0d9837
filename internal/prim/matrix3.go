package prim

import "math"

// Matrix3 is a row-major 3x3 matrix, stored as its three row vectors.
type Matrix3 struct {
	A, B, C Vector3
}

// NewMatrix3 builds a matrix from its three rows.
func NewMatrix3(a, b, c Vector3) Matrix3 {
	return Matrix3{A: a, B: b, C: c}
}

// MulVector applies the matrix to a column vector.
func (m Matrix3) MulVector(v Vector3) Vector3 {
	return Vector3{
		X: m.A.X*v.X + m.A.Y*v.Y + m.A.Z*v.Z,
		Y: m.B.X*v.X + m.B.Y*v.Y + m.B.Z*v.Z,
		Z: m.C.X*v.X + m.C.Y*v.Y + m.C.Z*v.Z,
	}
}

// MulMatrix composes m * other (m applied after other).
func (m Matrix3) MulMatrix(other Matrix3) Matrix3 {
	row := func(r Vector3) Vector3 {
		return Vector3{
			X: r.X*other.A.X + r.Y*other.B.X + r.Z*other.C.X,
			Y: r.X*other.A.Y + r.Y*other.B.Y + r.Z*other.C.Y,
			Z: r.X*other.A.Z + r.Y*other.B.Z + r.Z*other.C.Z,
		}
	}
	return Matrix3{A: row(m.A), B: row(m.B), C: row(m.C)}
}

// RotationMatrix composes X, Y and Z Euler rotations (in radians) in that
// order: R = Rz * Ry * Rx.
func RotationMatrix(rotation Vector3) Matrix3 {
	x, y, z := rotation.X, rotation.Y, rotation.Z

	rx := Matrix3{
		A: Vector3{1, 0, 0},
		B: Vector3{0, math.Cos(x), -math.Sin(x)},
		C: Vector3{0, math.Sin(x), math.Cos(x)},
	}
	ry := Matrix3{
		A: Vector3{math.Cos(y), 0, math.Sin(y)},
		B: Vector3{0, 1, 0},
		C: Vector3{-math.Sin(y), 0, math.Cos(y)},
	}
	rz := Matrix3{
		A: Vector3{math.Cos(z), -math.Sin(z), 0},
		B: Vector3{math.Sin(z), math.Cos(z), 0},
		C: Vector3{0, 0, 1},
	}
	return rz.MulMatrix(ry).MulMatrix(rx)
}
