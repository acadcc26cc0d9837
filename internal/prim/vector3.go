// Package prim implements the math primitives the renderer is built on:
// a 3-vector used interchangeably for points, directions, colors and UV
// pairs, a row-major 3x3 matrix, and the random samplers the integrator
// draws from.
package prim

import (
	"fmt"
	"math"
)

// Vector3 is a triple of 64-bit floats. It doubles as a point, a
// direction, an RGB color (X, Y, Z as R, G, B) and a
// UV pair (z left at 0).
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 constructs a vector from its three components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// RGB is a convenience constructor for a color from normalized channels.
func RGB(r, g, b float64) Vector3 {
	return Vector3{X: r, Y: g, Z: b}
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies two vectors component-wise (the Hadamard product); used
// to modulate a light color by a surface albedo.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Div(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Norm2 returns the squared Euclidean norm, cheaper than Norm when only
// used for comparison or division by itself.
func (v Vector3) Norm2() float64 {
	return v.Dot(v)
}

func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

// Normalize returns v scaled to unit length. The zero vector normalizes
// to NaN components; callers must not normalize a zero vector.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1.0 / v.Norm())
}

func (v Vector3) Abs() Vector3 {
	return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Component returns the i'th axis value (0=X, 1=Y, 2=Z), used by the BVH
// build to index by "the longest axis" without a switch at every call
// site.
func (v Vector3) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// GreatestComponent returns the axis index (0, 1 or 2) with the largest
// magnitude, used to pick the BVH split axis.
func (v Vector3) GreatestComponent() int {
	abs := v.Abs()
	axis := 0
	best := abs.X
	if abs.Y > best {
		axis, best = 1, abs.Y
	}
	if abs.Z > best {
		axis = 2
	}
	return axis
}

// Clamp01 clamps each component to [0, 1].
func (v Vector3) Clamp01() Vector3 {
	return Vector3{clamp(0, 1, v.X), clamp(0, 1, v.Y), clamp(0, 1, v.Z)}
}

func clamp(lo, hi, x float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// RGBA implements the color.Color interface, treating the vector as a
// linear RGB color in [0, 1] per channel and fully opaque.
func (v Vector3) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	return uint32(v.X * max), uint32(v.Y * max), uint32(v.Z * max), max
}

// Lerp linearly interpolates from v to other by t in [0, 1].
func (v Vector3) Lerp(other Vector3, t float64) Vector3 {
	return Vector3{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}
