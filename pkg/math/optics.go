package math

import "math"

// Reflect calculates the reflection of v off a surface with unit normal n.
// v is not normalized.
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit direction uv through a surface with unit normal n using Snell's law.
//
// It does not detect total internal reflection: past the critical angle the
// result is finite but not physical. Use CannotRefract or RefractChecked when
// that matters.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// CannotRefract reports whether uv meets n beyond the critical angle for the given index ratio
func CannotRefract(uv, n Vec3, etaiOverEtat float64) bool {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	return etaiOverEtat*sinTheta > 1.0
}

// RefractChecked is Refract that returns false under total internal reflection
func RefractChecked(uv, n Vec3, etaiOverEtat float64) (Vec3, bool) {
	if CannotRefract(uv, n, etaiOverEtat) {
		return Vec3{}, false
	}
	return Refract(uv, n, etaiOverEtat), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
