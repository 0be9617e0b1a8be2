package core

import (
	"github.com/df07/go-raytracer-core/pkg/math"
)

// DefaultTMin is the lower bound used for scattered rays so a surface does not
// re-hit itself through floating-point error (shadow acne)
const DefaultTMin = 0.001

// Material interface for surfaces that scatter rays.
// Many hit records may reference the same material; they never modify it.
type Material interface {
	// Scatter returns the attenuation and scattered ray, or false if the ray is absorbed
	Scatter(rayIn math.Ray, hit *HitRecord, random math.RandomSource) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation math.Vec3 // Color attenuation
	Scattered   math.Ray  // The scattered ray
}

// HitRecord contains information about a ray-object intersection.
//
// Fields are only set through NewHitRecord so the point always lies on the
// ray and the normal always opposes the incoming direction.
type HitRecord struct {
	point     math.Vec3
	normal    math.Vec3
	material  Material
	t         float64
	frontFace bool
}

// NewHitRecord creates the record for a hit at parameter t.
// outwardNormal must be unit length and point out of the surface.
func NewHitRecord(ray math.Ray, t float64, outwardNormal math.Vec3, material Material) *HitRecord {
	h := &HitRecord{
		point:    ray.At(t),
		material: material,
		t:        t,
	}
	h.setFaceNormal(ray, outwardNormal)
	return h
}

// setFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) setFaceNormal(ray math.Ray, outwardNormal math.Vec3) {
	h.frontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.frontFace {
		h.normal = outwardNormal
	} else {
		h.normal = outwardNormal.Negate()
	}
}

// Point of intersection
func (h *HitRecord) Point() math.Vec3 { return h.point }

// Normal is the unit surface normal, oriented against the incoming ray
func (h *HitRecord) Normal() math.Vec3 { return h.normal }

// Material of the hit object; may be nil
func (h *HitRecord) Material() Material { return h.material }

// T is the ray parameter of the intersection
func (h *HitRecord) T() float64 { return h.t }

// FrontFace reports whether the ray arrived from the outward side of the surface
func (h *HitRecord) FrontFace() bool { return h.frontFace }

// Hittable is implemented by every geometry and every container of geometry.
//
// Hit reports the nearest intersection with t strictly inside (tMin, tMax).
// It must not modify the receiver, so concurrent calls with different rays are safe.
type Hittable interface {
	Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool)
}
