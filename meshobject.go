package pathtracer

import (
	"fmt"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// Texture samples a surface color from UV coordinates, decoupling a
// MeshObject's material from any particular image format or decoder.
type Texture interface {
	GetColor(uv prim.Vector3) prim.Vector3
}

// MeshObject wraps a Mesh's geometry (queried through a BVHTree, not a
// linear scan) with the same material capability set Sphere exposes, so
// Scene can treat meshes and spheres as interchangeable Objects.
type MeshObject struct {
	mesh *Mesh
	bvh  *BVHTree

	color           prim.Vector3
	mirror          bool
	transparent     bool
	refractiveIndex float64
	texture         Texture
}

// MeshObjectBuilder assembles a MeshObject one capability at a time.
// Build constructs the BVHTree, so it must be called exactly once, after
// every mesh transform (Translate/Rotate/Scale) has already been
// applied.
type MeshObjectBuilder struct {
	object MeshObject
}

// NewMeshObjectBuilder starts building a MeshObject over mesh.
func NewMeshObjectBuilder(mesh *Mesh) *MeshObjectBuilder {
	return &MeshObjectBuilder{object: MeshObject{
		mesh:            mesh,
		color:           prim.RGB(1, 1, 1),
		refractiveIndex: 1.0,
	}}
}

func (b *MeshObjectBuilder) WithColor(color prim.Vector3) *MeshObjectBuilder {
	b.object.color = color
	return b
}

func (b *MeshObjectBuilder) WithMirror(mirror bool) *MeshObjectBuilder {
	b.object.mirror = mirror
	return b
}

func (b *MeshObjectBuilder) WithTransparent(transparent bool) *MeshObjectBuilder {
	b.object.transparent = transparent
	return b
}

func (b *MeshObjectBuilder) WithRefractiveIndex(ior float64) *MeshObjectBuilder {
	b.object.refractiveIndex = ior
	return b
}

func (b *MeshObjectBuilder) WithTexture(texture Texture) *MeshObjectBuilder {
	b.object.texture = texture
	return b
}

func (b *MeshObjectBuilder) Build() *MeshObject {
	o := b.object
	o.bvh = NewBVHTree(o.mesh)
	return &o
}

func (o *MeshObject) String() string {
	return fmt.Sprintf("MeshObject(%d triangles)", len(o.mesh.Triangles))
}

// Intersect delegates to the mesh's BVHTree.
func (o *MeshObject) Intersect(ray Ray) (Intersection, bool) {
	intersection, ok := o.bvh.Intersect(ray)
	if !ok {
		return Intersection{}, false
	}
	return intersection.WithObject(o), true
}

func (o *MeshObject) IsOpaque() bool           { return !o.mirror && !o.transparent }
func (o *MeshObject) IsMirror() bool           { return o.mirror }
func (o *MeshObject) IsTransparent() bool      { return o.transparent }
func (o *MeshObject) IsLightSource() bool      { return false }
func (o *MeshObject) RefractiveIndex() float64 { return o.refractiveIndex }
func (o *MeshObject) LightIntensity() float64  { return 0 }

// Albedo returns the texture sample at the intersection's UV mapping, if
// the object carries a texture and the intersection carries a mapping;
// otherwise the object's flat color.
func (o *MeshObject) Albedo(intersection Intersection) prim.Vector3 {
	if o.texture != nil && intersection.HasMappingUV {
		return o.texture.GetColor(intersection.MappingUV)
	}
	return o.color
}
