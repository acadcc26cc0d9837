package pathtracer

import (
	"math"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// Camera maps image-plane pixel indices to world-space rays. Its
// rotation matrix is composed once at construction (R = Rz * Ry * Rx)
// rather than recomputed per pixel.
type Camera struct {
	Position       prim.Vector3
	RotationMatrix prim.Matrix3
	FOV            float64
}

// NewCamera builds a camera at position with the given Euler rotation
// (radians) and field of view (radians). RayForPixel spreads the field
// of view across the image width.
func NewCamera(position, rotation prim.Vector3, fov float64) *Camera {
	return &Camera{
		Position:       position,
		RotationMatrix: prim.RotationMatrix(rotation),
		FOV:            fov,
	}
}

// Forward returns the camera's into-the-scene axis: the world direction
// a ray through the image center is cast along.
func (c *Camera) Forward() prim.Vector3 {
	return c.RotationMatrix.MulVector(prim.NewVector3(0, 1, 0)).Normalize()
}

// RayForPixel builds the world-space ray through pixel (row, col) of a
// width x height image, offset by (dx, dy) fractional pixels for
// antialiasing jitter (dx=dy=0 for an unjittered sample).
func (c *Camera) RayForPixel(row, col, width, height int, dx, dy float64) Ray {
	w := float64(width)
	h := float64(height)

	x := -(float64(col) + 0.5 + dx) + w/2
	y := w / (2 * math.Tan(c.FOV/2))
	z := -(float64(row) + 0.5 + dy) + h/2

	localPoint := prim.NewVector3(x, y, z)
	worldPoint := c.RotationMatrix.MulVector(localPoint).Add(c.Position)
	direction := worldPoint.Sub(c.Position).Normalize()

	return NewRay(c.Position, direction)
}
