package pathtracer

// MinBVHNodeSize is the triangle-count threshold at or below which a BVH build
// stops subdividing and makes a leaf.
const MinBVHNodeSize = 5

// BVHNode is one node of a BVHTree: a bounding box over a contiguous
// range of the owning mesh's (permuted) triangle array, plus either two
// children or none (a leaf). Interior nodes' children partition
// [start, end) without gap or overlap.
type BVHNode struct {
	BoundingBox BoundingBox
	Left, Right *BVHNode
	Start, End  int
}

// IsLeaf reports whether this node has no children.
func (n *BVHNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// newBVHNode builds the subtree over mesh triangles [start, end),
// permuting mesh.Triangles in place by a median split on the longest
// axis of the range's bounding box.
func newBVHNode(mesh *Mesh, start, end int) *BVHNode {
	box := NewBoundingBoxFromTriangleRange(mesh, start, end)
	axis := box.Diagonal().Abs().GreatestComponent()
	center := box.Center().Component(axis)

	pivot := start
	for i := start; i < end; i++ {
		triCenter := mesh.TriangleCenter(mesh.Triangles[i]).Component(axis)
		if triCenter < center {
			mesh.SwapTriangles(i, pivot)
			pivot++
		}
	}

	if pivot <= start || pivot >= end-1 || end-start <= MinBVHNodeSize {
		return &BVHNode{BoundingBox: box, Start: start, End: end}
	}

	left := newBVHNode(mesh, start, pivot)
	right := newBVHNode(mesh, pivot, end)
	return &BVHNode{BoundingBox: box, Left: left, Right: right, Start: start, End: end}
}

// BVHTree is a bounding volume hierarchy over a mesh's triangles. Once
// built, the mesh's triangle order is fixed; nodes reference it only by
// index range.
type BVHTree struct {
	Root *BVHNode
	Mesh *Mesh
}

// NewBVHTree builds a tree over mesh, permuting mesh.Triangles as a side
// effect. mesh must not be mutated (translated/rotated/scaled) or have
// its triangle order touched afterward.
func NewBVHTree(mesh *Mesh) *BVHTree {
	root := newBVHNode(mesh, 0, len(mesh.Triangles))
	return &BVHTree{Root: root, Mesh: mesh}
}

// bvhStackEntry is one frame of the explicit traversal stack below;
// reified so traversal doesn't grow the Go call stack with tree depth.
type bvhStackEntry struct {
	node *BVHNode
}

// Intersect finds the closest triangle hit under the tree, identical to
// a linear scan over the mesh but doing less work: subtrees whose
// bounding box is missed, or whose hit distance is no closer than the
// best intersection found so far, are skipped entirely.
func (t *BVHTree) Intersect(ray Ray) (Intersection, bool) {
	if _, hit := t.Root.BoundingBox.Intersect(ray); !hit {
		return Intersection{}, false
	}

	stack := []bvhStackEntry{{node: t.Root}}
	var best Intersection
	found := false

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := entry.node

		boxHit, ok := node.BoundingBox.Intersect(ray)
		if !ok {
			continue
		}
		if found && boxHit.Distance >= best.Distance {
			continue
		}

		if node.IsLeaf() {
			hit, ok := t.Mesh.IntersectPart(ray, node.Start, node.End)
			if ok && (!found || hit.Distance < best.Distance) {
				best = hit
				found = true
			}
			continue
		}

		if node.Left != nil {
			stack = append(stack, bvhStackEntry{node: node.Left})
		}
		if node.Right != nil {
			stack = append(stack, bvhStackEntry{node: node.Right})
		}
	}

	return best, found
}
