package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// randomScene builds a mix of spheres, quads and rotated boxes
func randomScene(random *rand.Rand, n int) []Hittable {
	shapes := make([]Hittable, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		switch i % 3 {
		case 0:
			shapes = append(shapes, NewSphere(center, 0.2+random.Float64(), testMaterial))
		case 1:
			u := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
			v := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
			shapes = append(shapes, NewQuad(center, u, v, testMaterial))
		default:
			box := NewBox(core.Vec3{}, core.NewVec3(1, 0.5, 0.7), testMaterial)
			shapes = append(shapes, NewInstance(box, random.Float64()*360, center))
		}
	}
	return shapes
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 3, 17, 200} {
		shapes := randomScene(random, n)
		bvh := NewBVH(shapes)
		list := NewList(shapes...)

		for i := 0; i < 2000; i++ {
			origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15)
			dir := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64()))
			ray := core.NewRay(origin, dir)

			var bvhRec, listRec material.HitRecord
			bvhHit := bvh.Hit(ray, forward, &bvhRec, nil)
			listHit := list.Hit(ray, forward, &listRec, nil)

			if bvhHit != listHit {
				t.Fatalf("n=%d ray %d: BVH hit=%v, linear hit=%v", n, i, bvhHit, listHit)
			}
			if bvhHit && math.Abs(bvhRec.T-listRec.T) > 1e-9 {
				t.Fatalf("n=%d ray %d: BVH t=%v, linear t=%v", n, i, bvhRec.T, listRec.T)
			}
		}
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	var rec material.HitRecord
	if bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), forward, &rec, nil) {
		t.Error("Empty BVH should never be hit")
	}
	if stats := bvh.Stats(); stats.Nodes != 0 || stats.Leaves != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}

func TestBVH_Stats(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		n        int
		maxDepth int
	}{
		{1, 1},
		{2, 2},
		{8, 4},
		{100, 8},
	}

	for _, tt := range tests {
		bvh := NewBVH(randomScene(random, tt.n))
		stats := bvh.Stats()

		// One leaf per shape in a full binary tree
		if stats.Leaves != tt.n {
			t.Errorf("n=%d: expected %d leaves, got %d", tt.n, tt.n, stats.Leaves)
		}
		if stats.Nodes != 2*tt.n-1 {
			t.Errorf("n=%d: expected %d nodes, got %d", tt.n, 2*tt.n-1, stats.Nodes)
		}
		if stats.MaxDepth != tt.maxDepth {
			t.Errorf("n=%d: expected depth %d, got %d", tt.n, tt.maxDepth, stats.MaxDepth)
		}
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	shapes := randomScene(random, 30)
	original := make([]Hittable, len(shapes))
	copy(original, shapes)

	NewBVH(shapes)
	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatalf("Input slice was reordered at %d", i)
		}
	}
}

func TestBVH_BoundingBoxEnclosesShapes(t *testing.T) {
	random := rand.New(rand.NewSource(8))
	shapes := randomScene(random, 50)
	box := NewBVH(shapes).BoundingBox()

	for i, shape := range shapes {
		sb := shape.BoundingBox()
		if !box.Contains(sb.Min()) || !box.Contains(sb.Max()) {
			t.Errorf("Shape %d box %v not inside BVH box %v", i, sb, box)
		}
	}
}
