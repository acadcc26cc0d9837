package pathtracer

import (
	"github.com/MatiasDuhalde/3d-graphics/internal/obj"
)

// LoadMeshFromOBJ reads an OBJ file into a Mesh ready for transforms and
// MeshObjectBuilder.
func LoadMeshFromOBJ(path string) (*Mesh, error) {
	parsed, err := obj.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return meshFromOBJ(parsed), nil
}

func meshFromOBJ(parsed *obj.Mesh) *Mesh {
	triangles := make([]Triangle, len(parsed.Triangles))
	for i, t := range parsed.Triangles {
		triangles[i] = Triangle{
			VertexIndices: t.VertexIndices,
			UVIndices:     t.UVIndices,
			NormalIndices: t.NormalIndices,
		}
	}
	return NewMesh(parsed.Vertices, parsed.Normals, parsed.UVs, triangles)
}

// LoadTextureForOBJ loads the texture referenced, via mtllib and
// map_Kd, by the OBJ file at path.
func LoadTextureForOBJ(path string) (Texture, error) {
	parsed, err := obj.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return obj.LoadMaterialTexture(parsed)
}
