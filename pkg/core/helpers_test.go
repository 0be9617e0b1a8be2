package core

import (
	stdmath "math"

	"github.com/df07/go-raytracer-core/pkg/math"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

func vecEqual(a, b math.Vec3) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tolerance) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tolerance) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tolerance)
}

// testSphere is a minimal geometry used to exercise the Hittable contract
type testSphere struct {
	center   math.Vec3
	radius   float64
	material Material
}

func (s *testSphere) Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2(halfB)t + c = 0
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := stdmath.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	outwardNormal := ray.At(root).Subtract(s.center).Divide(s.radius)
	return NewHitRecord(ray, root, outwardNormal, s.material), true
}

// mockMaterial scatters every ray straight along the normal
type mockMaterial struct {
	albedo math.Vec3
}

func (m *mockMaterial) Scatter(rayIn math.Ray, hit *HitRecord, random math.RandomSource) (ScatterResult, bool) {
	direction := hit.Normal().Add(math.RandomUnitVector(random))
	if direction.NearZero() {
		direction = hit.Normal()
	}
	return ScatterResult{
		Attenuation: m.albedo,
		Scattered:   math.NewRay(hit.Point(), direction),
	}, true
}

// mockHittable returns a fixed record and remembers the interval it was asked about
type mockHittable struct {
	record   *HitRecord
	lastTMax float64
	calls    int
}

func (m *mockHittable) Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool) {
	m.calls++
	m.lastTMax = tMax
	if m.record == nil || m.record.T() <= tMin || m.record.T() >= tMax {
		return nil, false
	}
	return m.record, true
}
