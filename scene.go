package pathtracer

import (
	"math"
	"math/rand"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// MaxRecursionDepth bounds calculateColorRecursive; any path deeper than
// this returns black rather than continuing to bounce.
const MaxRecursionDepth = 5

// EnableFresnel, EnableIndirectLighting and EnableAntialiasing are the
// renderer's feature toggles. They are package variables rather than
// per-call parameters so demo scenes and the scheduler agree on one
// source of truth; a real CLI surface would expose them as flags, but
// this one is hard-coded (see cmd/pathtracer).
var (
	EnableFresnel          = true
	EnableIndirectLighting = true
	EnableAntialiasing     = true
)

// SceneObject is what Scene stores in its object list: a geometric
// primitive that also exposes the material capability set the
// integrator dispatches on.
type SceneObject interface {
	Intersectable
	Object
}

// Scene owns every intersectable object and every light source in a
// render. It is assembled single-threaded and, once handed to Image,
// treated as read-only by every rendering worker.
type Scene struct {
	objects      []SceneObject
	lightSources []LightSource
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends an intersectable object to the scene.
func (s *Scene) AddObject(object SceneObject) *Scene {
	s.objects = append(s.objects, object)
	return s
}

// AddLightSource appends a light sampler to the scene. A Sphere that is
// also a light should be passed to both AddObject and AddLightSource;
// the two calls share the same underlying value.
func (s *Scene) AddLightSource(light LightSource) *Scene {
	s.lightSources = append(s.lightSources, light)
	return s
}

// Intersect returns the closest hit across every object in the scene.
func (s *Scene) Intersect(ray Ray) (Intersection, bool) {
	var closest Intersection
	found := false

	for _, object := range s.objects {
		hit, ok := object.Intersect(ray)
		if ok && (!found || hit.Distance < closest.Distance) {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// CalculateColor estimates the radiance arriving along the ray that
// produced intersection. A scene with no light sources is black by
// definition; otherwise recursion starts at depth 1, outside an
// indirect bounce.
//
// multiSampling tells the Fresnel and indirect-lighting estimators
// whether they are already being averaged over many samples by the
// caller (antialiasing on, one camera ray per call) or are the sole
// source of variance for this pixel (antialiasing off). In the first
// case each takes exactly one sample per call; in the second each
// runs its own large internal sample loop. Either way, any recursive
// call made from inside one of those loops passes multiSampling=true,
// so only the outermost encounter of a stochastic surface pays the
// full sample count; nested bounces never multiply it out.
func (s *Scene) CalculateColor(intersection Intersection, multiSampling bool) prim.Vector3 {
	if len(s.lightSources) == 0 {
		return prim.Vector3{}
	}
	return s.calculateColorRecursive(intersection, 1, false, multiSampling)
}

func (s *Scene) calculateColorRecursive(intersection Intersection, depth int, indirectLight, multiSampling bool) prim.Vector3 {
	if depth > MaxRecursionDepth {
		return prim.Vector3{}
	}

	object := intersection.Object

	switch {
	case object.IsLightSource() && !indirectLight:
		return prim.RGB(1, 1, 1).Scale(object.LightIntensity())
	case object.IsOpaque():
		return s.calculateOpaqueColor(intersection, depth, multiSampling)
	case object.IsMirror():
		return s.calculateMirrorColor(intersection, depth, indirectLight, multiSampling)
	case object.IsTransparent():
		return s.calculateTransparentColor(intersection, depth, indirectLight, multiSampling)
	default:
		return prim.Vector3{}
	}
}

// calculateOpaqueColor combines next-event-estimation direct lighting
// with, if enabled, one bounce of indirect lighting.
func (s *Scene) calculateOpaqueColor(intersection Intersection, depth int, multiSampling bool) prim.Vector3 {
	direct := s.calculateDirectLightingColor(intersection)
	if !EnableIndirectLighting {
		return direct
	}
	return direct.Add(s.calculateIndirectLightingColor(intersection, depth, multiSampling))
}

// calculateDirectLightingColor implements next-event estimation: pick a
// light uniformly at random, ask it for a shadow ray toward the shading
// point, and evaluate its shading contract only if nothing occludes it.
func (s *Scene) calculateDirectLightingColor(intersection Intersection) prim.Vector3 {
	light := s.lightSources[rand.Intn(len(s.lightSources))]

	lightRay := light.RayFromLightSource(intersection.Point)
	if !s.lightRayReachesPoint(lightRay, intersection.Point) {
		return prim.Vector3{}
	}

	albedo := intersection.Object.Albedo(intersection)
	return light.LambertianShading(intersection.Point, intersection.Normal, albedo, lightRay)
}

// lightRayReachesPoint traces lightRay through the scene and reports
// whether nothing strictly nearer than point blocks it.
func (s *Scene) lightRayReachesPoint(lightRay Ray, point prim.Vector3) bool {
	hit, ok := s.Intersect(lightRay)
	if !ok {
		return true
	}
	distanceToPoint := point.Sub(lightRay.Origin).Norm()
	return RayOffsetEpsilon >= distanceToPoint-hit.Distance
}

// calculateIndirectLightingColor samples cosine-weighted bounces off the
// shading normal and modulates their average by the surface albedo.
// Under multiSampling it takes exactly one sample, relying on the
// caller (many camera rays per pixel) to average out the noise;
// otherwise it runs its own IndirectLightingSamples-wide loop. Every
// recursive call is indirectLight=true (so a bounce landing on a light
// source isn't double-counted against the direct term above) and
// multiSampling=true (so a second stochastic surface hit deeper in the
// path never multiplies the sample count out).
func (s *Scene) calculateIndirectLightingColor(intersection Intersection, depth int, multiSampling bool) prim.Vector3 {
	rayPaths := IndirectLightingSamples
	if multiSampling {
		rayPaths = 1
	}

	albedo := intersection.Object.Albedo(intersection)
	var color prim.Vector3
	for i := 0; i < rayPaths; i++ {
		bounceDirection := prim.RandomCosineWeightedHemisphere(intersection.Normal)
		bounceRay := NewRay(intersection.Point, bounceDirection).AddOffset()

		hit, ok := s.Intersect(bounceRay)
		if !ok {
			continue
		}
		color = color.Add(s.calculateColorRecursive(hit, depth+1, true, true))
	}

	return albedo.Mul(color.Scale(1.0 / float64(rayPaths)))
}

func (s *Scene) calculateMirrorColor(intersection Intersection, depth int, indirectLight, multiSampling bool) prim.Vector3 {
	reflected := intersection.SourceRay.Reflected(intersection.Point, intersection.Normal)
	hit, ok := s.Intersect(reflected)
	if !ok {
		return prim.Vector3{}
	}
	return s.calculateColorRecursive(hit, depth+1, indirectLight, multiSampling)
}

func (s *Scene) calculateTransparentColor(intersection Intersection, depth int, indirectLight, multiSampling bool) prim.Vector3 {
	if EnableFresnel {
		return s.calculateFresnelColor(intersection, depth, indirectLight, multiSampling)
	}
	refracted, _ := refractRay(intersection)
	hit, ok := s.Intersect(refracted)
	if !ok {
		return prim.Vector3{}
	}
	return s.calculateColorRecursive(hit, depth+1, indirectLight, multiSampling)
}

// calculateFresnelColor is a Schlick estimator: each sample follows the
// reflected ray with probability equal to the Fresnel reflection
// coefficient, and the refracted ray otherwise. Under multiSampling it
// takes exactly one sample per call, as with indirect lighting above;
// otherwise it runs its own FresnelSamples-wide loop, with every
// recursive call inside forced to multiSampling=true.
func (s *Scene) calculateFresnelColor(intersection Intersection, depth int, indirectLight, multiSampling bool) prim.Vector3 {
	rayPaths := FresnelSamples
	if multiSampling {
		rayPaths = 1
	}

	refracted, tir := refractRay(intersection)
	reflectionCoefficient := 1.0
	if !tir {
		reflectionCoefficient = schlickReflectance(intersection)
	}
	reflected := intersection.SourceRay.Reflected(intersection.Point, intersection.Normal)

	var color prim.Vector3
	for i := 0; i < rayPaths; i++ {
		var next Ray
		if tir || prim.RandomFloat64() < reflectionCoefficient {
			next = reflected
		} else {
			next = refracted
		}

		hit, ok := s.Intersect(next)
		if !ok {
			continue
		}
		color = color.Add(s.calculateColorRecursive(hit, depth+1, indirectLight, true))
	}

	return color.Scale(1.0 / float64(rayPaths))
}

// refractRay computes the refracted ray at intersection per Snell's
// law, or the reflected ray (and tir=true) under total internal
// reflection. n2 is the medium index of refraction on the far side of
// the surface: the object's own refractive index on an exterior hit
// (entering the object), 1.0 on an interior hit (leaving it).
func refractRay(intersection Intersection) (ray Ray, tir bool) {
	n2, normal := transmissionMedium(intersection)

	incident := intersection.SourceRay
	n := incident.RefractiveIndex / n2
	cosI := incident.Direction.Dot(normal)
	sin2T := n * n * (1 - cosI*cosI)

	if sin2T > 1 {
		return incident.Reflected(intersection.Point, intersection.Normal), true
	}

	cosT := math.Sqrt(1 - sin2T)
	tangent := incident.Direction.Sub(normal.Scale(cosI)).Scale(n)
	direction := tangent.Add(normal.Scale(cosT)).Normalize()

	return NewRayWithRefractiveIndex(intersection.Point, direction, n2).AddOffset(), false
}

// schlickReflectance evaluates Schlick's approximation of the Fresnel
// reflectance at intersection, using the same n1, n2 and cos_i as
// refractRay.
func schlickReflectance(intersection Intersection) float64 {
	n2, normal := transmissionMedium(intersection)
	n1 := intersection.SourceRay.RefractiveIndex

	r0 := (n1 - n2) / (n1 + n2)
	r0 *= r0

	cosI := math.Abs(intersection.SourceRay.Direction.Dot(normal))
	return r0 + (1-r0)*math.Pow(1-cosI, 5)
}

// transmissionMedium returns the refractive index on the far side of
// intersection's surface and the normal oriented into that medium: the
// object's own index and the flipped (inward) normal when the ray is
// entering the object, or vacuum (1.0) and the geometric (outward)
// normal when leaving it.
func transmissionMedium(intersection Intersection) (n2 float64, normal prim.Vector3) {
	if intersection.Exterior {
		return intersection.Object.RefractiveIndex(), intersection.Normal.Neg()
	}
	return 1.0, intersection.Normal
}
