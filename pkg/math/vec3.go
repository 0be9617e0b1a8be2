package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NearZeroThreshold is the per-component magnitude below which a vector counts as degenerate
const NearZeroThreshold = 1e-8

// Vec3 represents a 3D vector. It is used interchangeably as a point, a direction and a color.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromR3 converts a gonum spatial vector
func FromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// R3 converts the vector to a gonum spatial vector
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Index returns the component on axis i (0=X, 1=Y, 2=Z).
// Any other index is a programming error and panics.
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vec3: index %d out of range", i))
}

// SetIndex sets the component on axis i (0=X, 1=Y, 2=Z)
func (v *Vec3) SetIndex(i int, value float64) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("vec3: index %d out of range", i))
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar. Division by zero yields infinities or NaNs.
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// AddInPlace adds other to the receiver
func (v *Vec3) AddInPlace(other Vec3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// MultiplyInPlace scales the receiver
func (v *Vec3) MultiplyInPlace(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// DivideInPlace divides the receiver by a scalar
func (v *Vec3) DivideInPlace(scalar float64) {
	v.MultiplyInPlace(1 / scalar)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
// Use it instead of Length when only comparing magnitudes.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// UnitVector returns v / |v|. A zero-length vector produces NaNs.
func (v Vec3) UnitVector() Vec3 {
	return v.Divide(v.Length())
}

// Normalize returns a unit vector in the same direction, or the zero vector for zero input
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// NearZero reports whether every component is smaller in magnitude than NearZeroThreshold.
// Scatter code uses it to replace degenerate directions before they turn into NaNs.
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < NearZeroThreshold &&
		math.Abs(v.Y) < NearZeroThreshold &&
		math.Abs(v.Z) < NearZeroThreshold
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(random RandomSource) Vec3 {
	return Vec3{
		X: RandomDouble(random),
		Y: RandomDouble(random),
		Z: RandomDouble(random),
	}
}

// RandomVec3InRange returns a vector with each component uniform in [min, max)
func RandomVec3InRange(random RandomSource, min, max float64) Vec3 {
	return Vec3{
		X: RandomDoubleInRange(random, min, max),
		Y: RandomDoubleInRange(random, min, max),
		Z: RandomDoubleInRange(random, min, max),
	}
}
