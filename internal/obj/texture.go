package obj

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// textureGamma is the gamma assumed to have been applied when the
// source image was authored; texels are linearized by its inverse on
// load so shading math operates in linear light.
const textureGamma = 2.2

// Texture is a decoded image sampled in UV space and linearized to
// floating-point RGB in [0, 1]^3.
type Texture struct {
	width, height int
	pixels        []prim.Vector3 // row-major, linear RGB
}

// LoadMaterialTexture follows an OBJ's mtllib reference to its MTL file,
// then the MTL's map_Kd directive to an image file in the same
// directory, and decodes it.
func LoadMaterialTexture(mesh *Mesh) (*Texture, error) {
	if mesh.MaterialPath == "" {
		return nil, fmt.Errorf("obj: mesh has no mtllib reference")
	}

	imagePath, err := mapKdPath(mesh.MaterialPath)
	if err != nil {
		return nil, err
	}

	return LoadTexture(imagePath)
}

// mapKdPath reads mtlPath and returns the path of its map_Kd image,
// resolved relative to mtlPath's own directory.
func mapKdPath(mtlPath string) (string, error) {
	file, err := os.Open(mtlPath)
	if err != nil {
		return "", fmt.Errorf("obj: open %s: %w", mtlPath, err)
	}
	defer file.Close()

	dir := ""
	if idx := strings.LastIndexByte(mtlPath, '/'); idx >= 0 {
		dir = mtlPath[:idx+1]
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "map_Kd" {
			return dir + fields[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("obj: scan %s: %w", mtlPath, err)
	}

	return "", fmt.Errorf("obj: %s has no map_Kd directive", mtlPath)
}

// LoadTexture decodes the image at path (PNG, JPEG or BMP) and
// linearizes it to floating-point RGB.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("obj: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]prim.Vector3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = prim.NewVector3(
				linearize(r),
				linearize(g),
				linearize(b),
			)
		}
	}

	return &Texture{width: width, height: height, pixels: pixels}, nil
}

// linearize converts a 16-bit (as returned by color.Color.RGBA) channel
// sample to linear [0, 1] via inverse gamma.
func linearize(channel16 uint32) float64 {
	c := float64(channel16) / 0xffff
	return math.Pow(c, textureGamma)
}

// GetColor samples the texture at uv, with u and v already reduced to
// [0, 1). Out-of-range coordinates (including v=0, which maps to row
// height rather than height-1) are a caller error, not handled here.
func (t *Texture) GetColor(uv prim.Vector3) prim.Vector3 {
	x := int(math.Floor(uv.X * float64(t.width)))
	y := t.height - int(math.Floor(uv.Y*float64(t.height)))
	return t.pixels[y*t.width+x]
}
