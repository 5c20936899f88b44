package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// noShape marks interior nodes
const noShape = -1

// bvhNode is one entry of the node arena. Interior nodes link to children by index;
// leaves reference exactly one shape.
type bvhNode struct {
	box         core.AABB
	left, right int32
	shape       int32
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable after construction and safe for concurrent Hit calls.
type BVH struct {
	nodes  []bvhNode
	shapes []Hittable
	root   int32
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
}

// NewBVH constructs a BVH over shapes. The input slice is not modified.
func NewBVH(shapes []Hittable) *BVH {
	bvh := &BVH{root: -1}
	if len(shapes) == 0 {
		return bvh
	}

	// Copy so sorting spans does not reorder the caller's slice
	bvh.shapes = make([]Hittable, len(shapes))
	copy(bvh.shapes, shapes)
	bvh.nodes = make([]bvhNode, 0, 2*len(shapes)-1)

	indices := make([]int32, len(shapes))
	boxes := make([]core.AABB, len(shapes))
	for i, shape := range bvh.shapes {
		indices[i] = int32(i)
		boxes[i] = shape.BoundingBox()
	}

	bvh.root = bvh.build(indices, boxes)
	return bvh
}

// build appends the subtree for indices to the arena and returns its node index
func (bvh *BVH) build(indices []int32, boxes []core.AABB) int32 {
	if len(indices) == 1 {
		return bvh.addNode(bvhNode{box: boxes[indices[0]], left: -1, right: -1, shape: indices[0]})
	}

	box := core.EmptyAABB
	for _, idx := range indices {
		box = box.Union(boxes[idx])
	}

	// Reserve this node before its children so the root lands at index 0
	self := bvh.addNode(bvhNode{box: box, shape: noShape})

	axis := box.LongestAxis()
	sort.SliceStable(indices, func(i, j int) bool {
		return boxes[indices[i]].Axis(axis).Min < boxes[indices[j]].Axis(axis).Min
	})

	mid := len(indices) / 2
	left := bvh.build(indices[:mid], boxes)
	right := bvh.build(indices[mid:], boxes)

	bvh.nodes[self].left = left
	bvh.nodes[self].right = right
	return self
}

func (bvh *BVH) addNode(node bvhNode) int32 {
	bvh.nodes = append(bvh.nodes, node)
	return int32(len(bvh.nodes) - 1)
}

// Hit returns the closest intersection among all shapes within rayT
func (bvh *BVH) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	if bvh.root < 0 {
		return false
	}
	return bvh.hitNode(bvh.root, ray, rayT, rec, sampler)
}

func (bvh *BVH) hitNode(index int32, ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, rayT) {
		return false
	}

	if node.shape != noShape {
		return bvh.shapes[node.shape].Hit(ray, rayT, rec, sampler)
	}

	hitLeft := bvh.hitNode(node.left, ray, rayT, rec, sampler)
	if hitLeft {
		rayT.Max = rec.T
	}
	hitRight := bvh.hitNode(node.right, ray, rayT, rec, sampler)

	return hitLeft || hitRight
}

// BoundingBox returns the box of the root node
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.root < 0 {
		return core.EmptyAABB
	}
	return bvh.nodes[bvh.root].box
}

// Stats walks the arena and reports node counts and depth
func (bvh *BVH) Stats() BVHStats {
	var stats BVHStats
	if bvh.root < 0 {
		return stats
	}
	bvh.collectStats(bvh.root, 1, &stats)
	return stats
}

func (bvh *BVH) collectStats(index int32, depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node := &bvh.nodes[index]
	if node.shape != noShape {
		stats.Leaves++
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
