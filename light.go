package pathtracer

import (
	"math"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// PointLight is a light source with no physical extent: it contributes
// no geometry to the scene (it is not Intersectable and can't be hit by
// a camera or shadow ray) and shades every point with a single shadow
// ray aimed at its exact position.
type PointLight struct {
	Position  prim.Vector3
	Intensity float64
}

// NewPointLight builds a point light at position radiating Intensity
// (an I/(4*pi*d^2) falloff is applied per shaded point, not baked in
// here).
func NewPointLight(position prim.Vector3, intensity float64) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// RayFromLightSource returns a ray from the light's position toward
// point, offset off the light so the ensuing shadow test doesn't
// immediately reintersect the light itself.
func (l *PointLight) RayFromLightSource(point prim.Vector3) Ray {
	direction := point.Sub(l.Position).Normalize()
	return NewRay(l.Position, direction).AddOffset()
}

// LambertianShading implements the point-light shading contract:
// albedo * I/(4*pi*d^2) * max(0, N.L) / pi.
func (l *PointLight) LambertianShading(point, normal, albedo prim.Vector3, lightRay Ray) prim.Vector3 {
	toLight := l.Position.Sub(point)
	d2 := toLight.Norm2()
	lightDirection := toLight.Normalize()

	surfacePower := l.Intensity / (4 * math.Pi * d2)
	cosTheta := math.Max(0, normal.Dot(lightDirection))

	return albedo.Scale(surfacePower * cosTheta / math.Pi)
}
