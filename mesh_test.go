package pathtracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

func unitTriangleMesh() *Mesh {
	vertices := []prim.Vector3{
		prim.NewVector3(0, 0, 0),
		prim.NewVector3(1, 0, 0),
		prim.NewVector3(0, 1, 0),
	}
	normals := []prim.Vector3{
		prim.NewVector3(0, 0, 1),
		prim.NewVector3(0, 0, 1),
		prim.NewVector3(0, 0, 1),
	}
	uvs := []prim.Vector3{
		prim.NewVector3(0, 0, 0),
		prim.NewVector3(1, 0, 0),
		prim.NewVector3(0, 1, 0),
	}
	triangles := []Triangle{{
		VertexIndices: [3]int{0, 1, 2},
		UVIndices:     [3]int{0, 1, 2},
		NormalIndices: [3]int{0, 1, 2},
	}}
	return NewMesh(vertices, normals, uvs, triangles)
}

func TestMeshIntersectHitsFrontFace(t *testing.T) {
	mesh := unitTriangleMesh()
	ray := NewRay(prim.NewVector3(0.2, 0.2, 5), prim.NewVector3(0, 0, -1))

	hit, ok := mesh.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if diff := cmp.Diff(5.0, hit.Distance, approxOpts); diff != "" {
		t.Errorf("distance mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1.0, hit.Normal.Norm(), approxOpts); diff != "" {
		t.Errorf("normal not unit length (-want +got):\n%s", diff)
	}
	if !hit.Exterior {
		t.Error("ray approaching from +z should be exterior")
	}
}

func TestMeshIntersectMissesOutsideTriangle(t *testing.T) {
	mesh := unitTriangleMesh()
	ray := NewRay(prim.NewVector3(5, 5, 5), prim.NewVector3(0, 0, -1))
	if _, ok := mesh.Intersect(ray); ok {
		t.Error("expected a miss outside the triangle")
	}
}

func TestMeshIntersectUVMapping(t *testing.T) {
	mesh := unitTriangleMesh()
	ray := NewRay(prim.NewVector3(0.25, 0.25, 5), prim.NewVector3(0, 0, -1))

	hit, ok := mesh.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !hit.HasMappingUV {
		t.Fatal("expected a UV mapping")
	}
	if diff := cmp.Diff(0.25, hit.MappingUV.X, approxOpts); diff != "" {
		t.Errorf("u mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(0.25, hit.MappingUV.Y, approxOpts); diff != "" {
		t.Errorf("v mismatch (-want +got):\n%s", diff)
	}
}

func TestMeshTranslateAndScale(t *testing.T) {
	mesh := unitTriangleMesh()
	mesh.Translate(prim.NewVector3(10, 0, 0))
	if diff := cmp.Diff(prim.NewVector3(10, 0, 0), mesh.Vertices[0], approxOpts); diff != "" {
		t.Errorf("translate mismatch (-want +got):\n%s", diff)
	}

	mesh.Scale(2)
	if diff := cmp.Diff(prim.NewVector3(20, 0, 0), mesh.Vertices[0], approxOpts); diff != "" {
		t.Errorf("scale mismatch (-want +got):\n%s", diff)
	}
}
