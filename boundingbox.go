package pathtracer

import (
	"math"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// BoundingBox is an axis-aligned box described by its min and max
// corners.
type BoundingBox struct {
	Min, Max prim.Vector3
}

// NewBoundingBoxFromMesh computes the box enclosing every vertex of
// mesh.
func NewBoundingBoxFromMesh(mesh *Mesh) BoundingBox {
	return newBoundingBoxFromVertices(mesh.Vertices)
}

// NewBoundingBoxFromTriangleRange computes the box enclosing the
// vertices reachable from triangles [start, end) of mesh. This is what
// the BVH build calls at every node.
func NewBoundingBoxFromTriangleRange(mesh *Mesh, start, end int) BoundingBox {
	minV := prim.NewVector3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxV := prim.NewVector3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for idx := start; idx < end; idx++ {
		tri := mesh.Triangles[idx]
		for _, vi := range tri.VertexIndices {
			minV, maxV = expand(minV, maxV, mesh.Vertices[vi])
		}
	}
	return BoundingBox{Min: minV, Max: maxV}
}

func newBoundingBoxFromVertices(vertices []prim.Vector3) BoundingBox {
	minV := prim.NewVector3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxV := prim.NewVector3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, v := range vertices {
		minV, maxV = expand(minV, maxV, v)
	}
	return BoundingBox{Min: minV, Max: maxV}
}

func expand(minV, maxV, v prim.Vector3) (prim.Vector3, prim.Vector3) {
	return prim.NewVector3(math.Min(minV.X, v.X), math.Min(minV.Y, v.Y), math.Min(minV.Z, v.Z)),
		prim.NewVector3(math.Max(maxV.X, v.X), math.Max(maxV.Y, v.Y), math.Max(maxV.Z, v.Z))
}

// Diagonal returns max - min.
func (box BoundingBox) Diagonal() prim.Vector3 {
	return box.Max.Sub(box.Min)
}

// Center returns the midpoint of min and max.
func (box BoundingBox) Center() prim.Vector3 {
	return box.Min.Add(box.Max).Scale(0.5)
}

// Intersect reports whether ray passes through the box, using the
// interval (slab) test on all three axes: per axis, the ray enters and
// exits an infinite slab between the min and max planes; the box is hit
// iff the three entry/exit intervals overlap somewhere ahead of the ray's
// origin, and that overlap's entry time (0 when the ray starts inside
// the box) is the returned distance. The BVH only needs the presence/absence
// signal and the entry distance for early rejection (not the hit point
// or normal), so those aren't computed.
func (box BoundingBox) Intersect(ray Ray) (Intersection, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)
		lo := box.Min.Component(axis)
		hi := box.Max.Component(axis)

		if direction == 0 {
			if origin < lo || origin > hi {
				return Intersection{}, false
			}
			continue
		}

		t1 := (lo - origin) / direction
		t2 := (hi - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return Intersection{}, false
		}
	}

	if tMax < 0 {
		return Intersection{}, false
	}
	distance := math.Max(tMin, 0)

	return Intersection{Distance: distance, SourceRay: ray}, true
}
