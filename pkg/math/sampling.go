package math

// RandomInUnitSphere returns a point uniformly distributed inside the unit ball.
// Candidates are drawn from the [-1,1]^3 cube until one falls inside;
// on average that takes 6/π ≈ 1.91 draws.
func RandomInUnitSphere(random RandomSource) Vec3 {
	for {
		p := RandomVec3InRange(random, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere
func RandomUnitVector(random RandomSource) Vec3 {
	return RandomInUnitSphere(random).UnitVector()
}

// RandomInHemisphere returns a point in the unit ball on the same side as normal
func RandomInHemisphere(normal Vec3, random RandomSource) Vec3 {
	inUnitSphere := RandomInUnitSphere(random)
	if inUnitSphere.Dot(normal) > 0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0 plane (for depth of field)
func RandomInUnitDisk(random RandomSource) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(RandomDoubleInRange(random, -1, 1), RandomDoubleInRange(random, -1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
