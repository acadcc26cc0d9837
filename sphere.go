package pathtracer

import (
	"fmt"
	"math"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// Sphere is both an analytic scene primitive and a spherical area light
// sampler over that same geometry; IsLightSource reports true only for
// spheres built with WithLight(true). Build one with NewSphereBuilder.
type Sphere struct {
	Center prim.Vector3
	Radius float64

	color           prim.Vector3
	mirror          bool
	transparent     bool
	refractiveIndex float64
	light           bool
	lightIntensity  float64
}

// SphereBuilder assembles a Sphere one capability at a time; the zero
// value after NewSphereBuilder is an opaque white sphere.
type SphereBuilder struct {
	sphere Sphere
}

// NewSphereBuilder starts building a sphere at center with the given
// radius.
func NewSphereBuilder(center prim.Vector3, radius float64) *SphereBuilder {
	return &SphereBuilder{sphere: Sphere{
		Center:          center,
		Radius:          radius,
		color:           prim.RGB(1, 1, 1),
		refractiveIndex: 1.0,
	}}
}

func (b *SphereBuilder) WithColor(color prim.Vector3) *SphereBuilder {
	b.sphere.color = color
	return b
}

func (b *SphereBuilder) WithMirror(mirror bool) *SphereBuilder {
	b.sphere.mirror = mirror
	return b
}

func (b *SphereBuilder) WithTransparent(transparent bool) *SphereBuilder {
	b.sphere.transparent = transparent
	return b
}

func (b *SphereBuilder) WithRefractiveIndex(ior float64) *SphereBuilder {
	b.sphere.refractiveIndex = ior
	return b
}

func (b *SphereBuilder) WithLight(light bool) *SphereBuilder {
	b.sphere.light = light
	return b
}

// WithLightIntensity sets the total radiant intensity of the sphere as a
// light source. It is stored internally as an areal quantity
// I_total / (4*pi^2*r^2), matching the Lambertian shading contract in
// Sphere.LambertianShading.
func (b *SphereBuilder) WithLightIntensity(intensity float64) *SphereBuilder {
	b.sphere.lightIntensity = intensity / (4 * math.Pi * math.Pi * b.sphere.Radius * b.sphere.Radius)
	return b
}

func (b *SphereBuilder) Build() *Sphere {
	s := b.sphere
	return &s
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere(Center: %v, Radius: %v)", s.Center, s.Radius)
}

// Normal returns the outward unit normal at a point assumed to lie on
// the sphere's surface.
func (s *Sphere) Normal(point prim.Vector3) prim.Vector3 {
	return point.Sub(s.Center).Normalize()
}

// Intersect solves |O + tD - C|^2 = r^2 for the closest positive t.
func (s *Sphere) Intersect(ray Ray) (Intersection, bool) {
	delta := ray.Origin.Sub(s.Center)
	b := ray.Direction.Dot(delta)
	disc := b*b - delta.Norm2() + s.Radius*s.Radius

	if disc < 0 {
		return Intersection{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := -b - sqrtDisc
	t2 := -b + sqrtDisc

	if t2 < 0 {
		return Intersection{}, false
	}

	distance := t2
	if t1 > 0 {
		distance = t1
	}

	point := ray.At(distance)
	normal := s.Normal(point)

	intersection := Intersection{
		Point:     point,
		Normal:    normal,
		Distance:  distance,
		Exterior:  ray.Direction.Dot(normal) < 0,
		SourceRay: ray,
	}
	return intersection.WithObject(s), true
}

func (s *Sphere) IsOpaque() bool           { return !s.mirror && !s.transparent }
func (s *Sphere) IsMirror() bool           { return s.mirror }
func (s *Sphere) IsTransparent() bool      { return s.transparent }
func (s *Sphere) IsLightSource() bool      { return s.light }
func (s *Sphere) RefractiveIndex() float64 { return s.refractiveIndex }
func (s *Sphere) LightIntensity() float64  { return s.lightIntensity }

func (s *Sphere) Albedo(Intersection) prim.Vector3 {
	return s.color
}

// RayFromLightSource samples a point on the sphere's surface, biased by
// a cosine-weighted distribution around the direction from the sphere's
// center toward point (importance sampling toward the visible cap), and
// returns a ray from that surface point toward point.
func (s *Sphere) RayFromLightSource(point prim.Vector3) Ray {
	randomDirection := prim.RandomCosineWeightedHemisphere(s.Normal(point))
	surfacePoint := randomDirection.Scale(s.Radius).Add(s.Center)
	lightDirection := point.Sub(surfacePoint).Normalize()
	return NewRay(surfacePoint, lightDirection).AddOffset()
}

// LambertianShading evaluates the spherical-light contribution at point,
// per spec: the light ray's origin is the sampled surface point, its
// direction points from that surface point toward point.
func (s *Sphere) LambertianShading(point, normal, albedo prim.Vector3, lightRay Ray) prim.Vector3 {
	lightSurfacePoint := lightRay.Origin
	lightDirection := lightRay.Direction
	lightSourceNormal := s.Normal(lightSurfacePoint)

	pdf := lightSourceNormal.Dot(s.Normal(point)) / (math.Pi * s.Radius * s.Radius)

	cosAtSurface := math.Max(0, normal.Dot(lightDirection.Neg()))
	cosAtLight := math.Max(0, lightSourceNormal.Dot(lightDirection))

	distance2 := lightSurfacePoint.Sub(point).Norm2()

	return albedo.Scale(s.lightIntensity / math.Pi * cosAtSurface * cosAtLight / (distance2 * pdf))
}
