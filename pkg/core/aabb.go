package core

// minAxisWidth is the smallest extent a bounding box axis may have
const minAxisWidth = 0.0001

// AABB represents an axis-aligned bounding box as three intervals
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a padded AABB from three intervals
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates a padded AABB spanning the given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	box := EmptyAABB
	for _, p := range points {
		box.X = box.X.Union(Interval{p.X, p.X})
		box.Y = box.Y.Union(Interval{p.Y, p.Y})
		box.Z = box.Z.Union(Interval{p.Z, p.Z})
	}
	box.padToMinimums()
	return box
}

// padToMinimums widens axes narrower than minAxisWidth so slab tests never see a zero-volume box
func (aabb *AABB) padToMinimums() {
	if !aabb.X.IsEmpty() && aabb.X.Size() < minAxisWidth {
		aabb.X = aabb.X.Expand(minAxisWidth)
	}
	if !aabb.Y.IsEmpty() && aabb.Y.Size() < minAxisWidth {
		aabb.Y = aabb.Y.Expand(minAxisWidth)
	}
	if !aabb.Z.IsEmpty() && aabb.Z.Size() < minAxisWidth {
		aabb.Z = aabb.Z.Expand(minAxisWidth)
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method.
// A zero direction component yields an infinite reciprocal; the comparisons below
// are written so that NaN slab distances leave the running interval untouched.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.Axis(axis)
		origin := ray.Origin.Axis(axis)
		adinv := 1.0 / ray.Direction.Axis(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv
		if t1 < t0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Contains reports whether the point lies inside the box
func (aabb AABB) Contains(p Vec3) bool {
	return aabb.X.Contains(p.X) && aabb.Y.Contains(p.Y) && aabb.Z.Contains(p.Z)
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Add(offset.X),
		Y: aabb.Y.Add(offset.Y),
		Z: aabb.Z.Add(offset.Z),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}
