package pathtracer

import "github.com/MatiasDuhalde/3d-graphics/internal/prim"

// Intersection is the result of a ray/surface query: where it hit, the
// surface normal there, how far along the ray, whether the ray entered
// from outside, which object it hit, and (for textured meshes) the UV
// coordinate to sample.
//
// Object is stamped by the geometry that produced the hit, after the
// underlying acceleration structure (BVH, bounding box, ...) returns it;
// the geometry layer itself doesn't know which Object it belongs to, so
// ownership has to be attached one level up. Querying Object before it is
// set is a programmer bug; Scene.Intersect always goes through a type
// that stamps it, so this should never surface to the integrator.
type Intersection struct {
	Point        prim.Vector3
	Normal       prim.Vector3
	Distance     float64
	Exterior     bool
	Object       Object
	SourceRay    Ray
	MappingUV    prim.Vector3
	HasMappingUV bool
}

// WithObject returns a copy of the intersection stamped with the object
// that produced it. It is the one place ownership is attached, used by
// every Intersectable wrapper right before handing an Intersection back
// up to the scene.
func (i Intersection) WithObject(object Object) Intersection {
	i.Object = object
	return i
}

// Intersectable is the single capability the tracer needs from any piece
// of scene geometry: given a ray, report the closest hit, if any.
type Intersectable interface {
	Intersect(ray Ray) (Intersection, bool)
}
