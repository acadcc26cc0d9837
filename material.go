package pathtracer

import "github.com/MatiasDuhalde/3d-graphics/internal/prim"

// Object is the material capability set the integrator dispatches on.
// Rather than a virtual shade() method, the object exposes which of
// {opaque, mirror, transparent, light source} it is, and the data each
// capability needs. At most one of IsOpaque/IsMirror/IsTransparent is
// true for any one object, but IsLightSource may additionally hold.
type Object interface {
	IsOpaque() bool
	IsMirror() bool
	IsTransparent() bool
	IsLightSource() bool

	// Albedo returns the diffuse base color to use for the given
	// intersection (a plain color for most objects, a texture sample
	// for a textured mesh).
	Albedo(intersection Intersection) prim.Vector3

	// RefractiveIndex is only meaningful when IsTransparent is true.
	RefractiveIndex() float64

	// LightIntensity is only meaningful when IsLightSource is true; it
	// is the areal radiant intensity I_total / (4*pi^2*r^2).
	LightIntensity() float64
}

// LightSource is the sampling capability of a light: a point to shade
// from, a shadow ray from the light toward a shaded point, and the
// Lambertian contribution that ray contributes. A sphere can implement
// both Object (as ordinary scene geometry) and LightSource (as a
// sampler) over the same underlying state; the scene keeps one reference
// to it in each of its two collections.
type LightSource interface {
	// RayFromLightSource returns a ray from a point on (or at) the light
	// toward the shading point, already offset off the light's own
	// surface.
	RayFromLightSource(point prim.Vector3) Ray

	// LambertianShading evaluates the light's contribution at point,
	// given the surface normal and albedo there and the ray produced by
	// RayFromLightSource (its origin is where the light was sampled
	// from; its direction points toward the shading point).
	LambertianShading(point, normal, albedo prim.Vector3, lightRay Ray) prim.Vector3
}
