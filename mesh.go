package pathtracer

import (
	"math"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// MeshEpsilon rejects near-degenerate (parallel-to-triangle-plane) rays
// in the Moller-Trumbore test below.
const MeshEpsilon = 1e-6

// Triangle is a triple of indices into a Mesh's vertex, UV and normal
// arrays.
type Triangle struct {
	VertexIndices [3]int
	UVIndices     [3]int
	NormalIndices [3]int
}

// Mesh is an indexed triangle soup: arrays of vertex positions, vertex
// normals and UV coordinates, plus triangles referencing them. Mutation
// operations transform vertex positions (and normals, for rotation) in
// place; BVHTree construction permutes Triangles and that order must not
// be disturbed afterward.
type Mesh struct {
	Vertices  []prim.Vector3
	Normals   []prim.Vector3
	UVs       []prim.Vector3
	Triangles []Triangle

	// NormalMapping, when true, shades with the barycentric-interpolated
	// vertex normal instead of the flat face normal.
	NormalMapping bool
}

// NewMesh builds a mesh from parallel arrays already in 0-based index
// form; normal mapping defaults to on.
func NewMesh(vertices, normals, uvs []prim.Vector3, triangles []Triangle) *Mesh {
	return &Mesh{Vertices: vertices, Normals: normals, UVs: uvs, Triangles: triangles, NormalMapping: true}
}

// Translate shifts every vertex by translation, in place.
func (m *Mesh) Translate(translation prim.Vector3) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(translation)
	}
	return m
}

// Rotate applies the Euler rotation (radians, X then Y then Z) to every
// vertex and every normal, in place.
func (m *Mesh) Rotate(rotation prim.Vector3) *Mesh {
	rot := prim.RotationMatrix(rotation)
	for i := range m.Vertices {
		m.Vertices[i] = rot.MulVector(m.Vertices[i])
	}
	for i := range m.Normals {
		m.Normals[i] = rot.MulVector(m.Normals[i])
	}
	return m
}

// Scale multiplies every vertex position by factor, in place.
func (m *Mesh) Scale(factor float64) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(factor)
	}
	return m
}

// SwapTriangles exchanges two triangles' positions in the Triangles
// slice; the BVH build uses this to partition triangles by bounding-box
// center without allocating a second array.
func (m *Mesh) SwapTriangles(i, j int) {
	m.Triangles[i], m.Triangles[j] = m.Triangles[j], m.Triangles[i]
}

// TriangleCenter returns the centroid of a triangle's three vertices.
func (m *Mesh) TriangleCenter(tri Triangle) prim.Vector3 {
	a := m.Vertices[tri.VertexIndices[0]]
	b := m.Vertices[tri.VertexIndices[1]]
	c := m.Vertices[tri.VertexIndices[2]]
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}

// Intersect scans every triangle in the mesh; MeshObject normally goes
// through a BVHTree instead, whose leaves call IntersectPart over their
// own triangle ranges. By itself this is the "linear scan" half of the
// BVH-equivalence property.
func (m *Mesh) Intersect(ray Ray) (Intersection, bool) {
	return m.IntersectPart(ray, 0, len(m.Triangles))
}

// IntersectPart scans triangles [start, end) for the closest hit. The
// Moller-Trumbore variant here keeps barycentric coordinates (alpha,
// beta, gamma) around so the caller can interpolate shading normals and
// UVs.
func (m *Mesh) IntersectPart(ray Ray, start, end int) (Intersection, bool) {
	closestDistance := math.Inf(1)
	var closestTriangle Triangle
	var closestAlpha, closestBeta, closestGamma float64
	closestExterior := true
	var closestFaceNormal prim.Vector3
	found := false

	o := ray.Origin
	u := ray.Direction

	for idx := start; idx < end; idx++ {
		tri := m.Triangles[idx]
		a := m.Vertices[tri.VertexIndices[0]]
		b := m.Vertices[tri.VertexIndices[1]]
		c := m.Vertices[tri.VertexIndices[2]]

		e1 := b.Sub(a)
		e2 := c.Sub(a)
		n := e1.Cross(e2)
		uDotN := u.Dot(n)
		if math.Abs(uDotN) < MeshEpsilon {
			continue
		}

		aO := a.Sub(o)
		aOxU := aO.Cross(u)

		beta := e2.Dot(aOxU) / uDotN
		if beta < 0 || beta > 1 {
			continue
		}

		gamma := -e1.Dot(aOxU) / uDotN
		if gamma < 0 || gamma+beta > 1 {
			continue
		}

		t := aO.Dot(n) / uDotN
		if t > MeshEpsilon && t < closestDistance {
			closestDistance = t
			closestTriangle = tri
			closestAlpha = 1 - beta - gamma
			closestBeta = beta
			closestGamma = gamma
			closestExterior = uDotN < 0
			closestFaceNormal = n
			found = true
		}
	}

	if !found {
		return Intersection{}, false
	}

	point := ray.At(closestDistance)

	var normal prim.Vector3
	if m.NormalMapping && len(m.Normals) > 0 {
		na := m.Normals[closestTriangle.NormalIndices[0]]
		nb := m.Normals[closestTriangle.NormalIndices[1]]
		nc := m.Normals[closestTriangle.NormalIndices[2]]
		shadingNormal := na.Scale(closestAlpha).Add(nb.Scale(closestBeta)).Add(nc.Scale(closestGamma))
		normal = shadingNormal.Normalize()
	} else {
		normal = closestFaceNormal.Normalize()
	}

	intersection := Intersection{
		Point:     point,
		Normal:    normal,
		Distance:  closestDistance,
		Exterior:  closestExterior,
		SourceRay: ray,
	}

	if len(m.UVs) > 0 {
		uvA := m.UVs[closestTriangle.UVIndices[0]]
		uvB := m.UVs[closestTriangle.UVIndices[1]]
		uvC := m.UVs[closestTriangle.UVIndices[2]]
		mapping := uvA.Scale(closestAlpha).Add(uvB.Scale(closestBeta)).Add(uvC.Scale(closestGamma))
		intersection.MappingUV = prim.NewVector3(fracAbs(mapping.X), fracAbs(mapping.Y), 0)
		intersection.HasMappingUV = true
	}

	return intersection, true
}

// fracAbs reduces x to its fractional part with the sign discarded, so a
// UV mapping tiles regardless of how many times it wraps.
func fracAbs(x float64) float64 {
	_, frac := math.Modf(x)
	return math.Abs(frac)
}
