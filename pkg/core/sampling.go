package core

import "math/rand"

// Random draws are taken from an explicit *rand.Rand so that each render
// worker owns an independent stream and tests can inject fixed seeds.

// RandomVec3 generates a vector with components uniform in [0,1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{random.Float64(), random.Float64(), random.Float64()}
}

// RandomVec3Range generates a vector with components uniform in [min,max)
func RandomVec3Range(minVal, maxVal float64, random *rand.Rand) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit
// sphere by rejection sampling the [-1,1] cube. Expected ~2 iterations.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, random)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the
// unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInHemisphere generates a random point in the unit sphere,
// flipped into the hemisphere around normal
func RandomInHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	p := RandomInUnitSphere(random)
	if p.Dot(normal) > 0 {
		return p
	}
	return p.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk in the
// xy-plane, for thin-lens depth of field
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}
