// Package obj reads Wavefront OBJ mesh files and their associated MTL
// materials and textures into plain vector/index data, independent of
// any particular scene or renderer representation.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
	"github.com/MatiasDuhalde/3d-graphics/internal/rlog"
)

// Triangle is a triple of 1-based-in-file, 0-based-in-memory indices
// into a Mesh's three vertex arrays.
type Triangle struct {
	VertexIndices [3]int
	UVIndices     [3]int
	NormalIndices [3]int
}

// Mesh is the raw, unprocessed content of an OBJ file: parallel vertex,
// normal and UV arrays plus the triangles referencing them.
type Mesh struct {
	Vertices  []prim.Vector3
	Normals   []prim.Vector3
	UVs       []prim.Vector3
	Triangles []Triangle

	// MaterialPath is the path the reader expects to find the
	// referenced MTL file at, resolved relative to the OBJ file's own
	// directory, if an mtllib directive was present.
	MaterialPath string
}

// ParseFile reads the OBJ file at path.
func ParseFile(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer file.Close()

	dir := ""
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		dir = path[:idx+1]
	}

	return Parse(file, dir)
}

// Parse reads an OBJ document from r. dir is prepended to any mtllib
// reference so the returned Mesh.MaterialPath is directly openable.
func Parse(r io.Reader, dir string) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = parseVertex(&mesh.Vertices, fields)
		case "vn":
			err = parseNormal(&mesh.Normals, fields)
		case "vt":
			err = parseUV(&mesh.UVs, fields)
		case "f":
			err = parseFace(&mesh.Triangles, fields)
		case "mtllib":
			if len(fields) >= 2 {
				mesh.MaterialPath = dir + fields[1]
			}
		case "usemtl", "s", "g", "#", "vp":
			// Ignored: material selection, smoothing groups,
			// polygon groups, comments, and parameter-space vertices
			// carry no information this renderer consumes.
		default:
			rlog.L.Warn("obj: unrecognized directive", zap.Int("line", lineNumber), zap.String("token", fields[0]))
		}

		if err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", lineNumber, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: scan: %w", err)
	}

	return mesh, nil
}

func parseVertex(vertices *[]prim.Vector3, fields []string) error {
	v, err := parseXYZ(fields)
	if err != nil {
		return fmt.Errorf("vertex: %w", err)
	}
	*vertices = append(*vertices, v)
	return nil
}

func parseNormal(normals *[]prim.Vector3, fields []string) error {
	n, err := parseXYZ(fields)
	if err != nil {
		return fmt.Errorf("normal: %w", err)
	}
	*normals = append(*normals, n.Normalize())
	return nil
}

func parseUV(uvs *[]prim.Vector3, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("uv: expected at least 2 components, got %d", len(fields)-1)
	}
	u, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("uv: %w", err)
	}
	v, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("uv: %w", err)
	}
	*uvs = append(*uvs, prim.NewVector3(u, v, 0))
	return nil
}

func parseXYZ(fields []string) (prim.Vector3, error) {
	if len(fields) < 4 {
		return prim.Vector3{}, fmt.Errorf("expected 3 components, got %d", len(fields)-1)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return prim.Vector3{}, err
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return prim.Vector3{}, err
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return prim.Vector3{}, err
	}
	return prim.NewVector3(x, y, z), nil
}

// parseFace handles only the triangular `f i/j/k i/j/k i/j/k` form; all
// three index components (vertex/uv/normal) are required.
func parseFace(triangles *[]Triangle, fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("face: only triangles are supported, got %d vertices", len(fields)-1)
	}

	var tri Triangle
	for i := 1; i <= 3; i++ {
		parts := strings.Split(fields[i], "/")
		if len(parts) != 3 {
			return fmt.Errorf("face: expected vertex/uv/normal indices, got %q", fields[i])
		}

		vIdx, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("face: vertex index: %w", err)
		}
		uvIdx, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("face: uv index: %w", err)
		}
		nIdx, err := strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("face: normal index: %w", err)
		}

		tri.VertexIndices[i-1] = vIdx - 1
		tri.UVIndices[i-1] = uvIdx - 1
		tri.NormalIndices[i-1] = nIdx - 1
	}

	*triangles = append(*triangles, tri)
	return nil
}
