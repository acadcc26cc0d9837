package pathtracer

import (
	"fmt"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// RayOffsetEpsilon is the distance a freshly spawned secondary ray is
// pushed along its own direction, so it doesn't immediately
// self-intersect the surface it was cast from.
const RayOffsetEpsilon = 1e-6

// DefaultRefractiveIndex is the index of refraction a ray starts with
// before entering any dielectric.
const DefaultRefractiveIndex = 1.0

// Ray is an origin, a unit-length direction, and the refractive index of
// the medium it is currently traveling through.
type Ray struct {
	Origin          prim.Vector3
	Direction       prim.Vector3
	RefractiveIndex float64
}

// NewRay builds a ray with the default (air) refractive index. direction
// is normalized.
func NewRay(origin, direction prim.Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), RefractiveIndex: DefaultRefractiveIndex}
}

// NewRayWithRefractiveIndex builds a ray traveling through a medium with
// the given refractive index (used when a transmitted ray enters or
// leaves a dielectric).
func NewRayWithRefractiveIndex(origin, direction prim.Vector3, refractiveIndex float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), RefractiveIndex: refractiveIndex}
}

// AddOffset pushes the ray's origin along its direction by
// RayOffsetEpsilon and returns the offset copy for chaining; the
// receiver itself is left unchanged. Every
// secondary ray spawned off a surface must call this before being
// traced, or it will immediately re-intersect its own origin surface.
func (r Ray) AddOffset() Ray {
	r.Origin = r.Origin.Add(r.Direction.Scale(RayOffsetEpsilon))
	return r
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) prim.Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Reflected builds the mirror-reflected ray off a surface hit at point,
// with outward normal, preserving the incoming medium's refractive
// index and offsetting the new origin so it doesn't self-intersect.
func (r Ray) Reflected(point, normal prim.Vector3) Ray {
	reflectedDirection := r.Direction.Sub(normal.Scale(2 * r.Direction.Dot(normal)))
	return NewRayWithRefractiveIndex(point, reflectedDirection, r.RefractiveIndex).AddOffset()
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v, IOR: %.4f)", r.Origin, r.Direction, r.RefractiveIndex)
}
