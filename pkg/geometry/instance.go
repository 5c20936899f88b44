package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Instance places a hittable in the world by rotating it about the Y axis and then translating it.
// The wrapped object is shared, not copied.
type Instance struct {
	object   Hittable
	offset   core.Vec3
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewInstance rotates object by angle degrees about Y, then moves it by offset
func NewInstance(object Hittable, angle float64, offset core.Vec3) *Instance {
	radians := core.DegreesToRadians(angle)
	inst := &Instance{
		object:   object,
		offset:   offset,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
	inst.bbox = inst.worldBox(object.BoundingBox())
	return inst
}

// Translate moves object by offset
func Translate(object Hittable, offset core.Vec3) *Instance {
	return NewInstance(object, 0, offset)
}

// RotateY rotates object by angle degrees about the Y axis through the origin
func RotateY(object Hittable, angle float64) *Instance {
	return NewInstance(object, angle, core.Vec3{})
}

// Hit transforms the ray into object space, intersects, and maps the result back
func (inst *Instance) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	origin := inst.toObject(ray.Origin.Subtract(inst.offset))
	direction := inst.toObject(ray.Direction)
	objectRay := core.NewRayWithTime(origin, direction, ray.Time)

	if !inst.object.Hit(objectRay, rayT, rec, sampler) {
		return false
	}

	// Rotation preserves the sign of ray·normal, so FrontFace stays valid
	rec.Point = inst.toWorld(rec.Point).Add(inst.offset)
	rec.Normal = inst.toWorld(rec.Normal)

	return true
}

// BoundingBox returns the world-space box enclosing the transformed object
func (inst *Instance) BoundingBox() core.AABB {
	return inst.bbox
}

// toObject applies the inverse rotation
func (inst *Instance) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		inst.cosTheta*v.X-inst.sinTheta*v.Z,
		v.Y,
		inst.sinTheta*v.X+inst.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation
func (inst *Instance) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		inst.cosTheta*v.X+inst.sinTheta*v.Z,
		v.Y,
		-inst.sinTheta*v.X+inst.cosTheta*v.Z,
	)
}

// worldBox rotates the eight corners of box and translates the result
func (inst *Instance) worldBox(box core.AABB) core.AABB {
	if box.X.IsEmpty() || box.Y.IsEmpty() || box.Z.IsEmpty() {
		return core.EmptyAABB
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.X.Max + float64(1-i)*box.X.Min
				y := float64(j)*box.Y.Max + float64(1-j)*box.Y.Min
				z := float64(k)*box.Z.Max + float64(1-k)*box.Z.Min
				corners = append(corners, inst.toWorld(core.NewVec3(x, y, z)).Add(inst.offset))
			}
		}
	}
	return core.NewAABBFromPoints(corners...)
}
