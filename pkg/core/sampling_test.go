package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomVec3_Range(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomVec3(random)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < 0 || c >= 1 {
				t.Fatalf("Component out of [0,1): %v", v)
			}
		}

		r := RandomVec3Range(-2, 3, random)
		for _, c := range []float64{r.X, r.Y, r.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("Component out of [-2,3): %v", r)
			}
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point outside unit sphere: %v (length %v)", p, p.Length())
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	const tolerance = 1e-12
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > tolerance {
			t.Fatalf("Expected unit length, got %v", v.Length())
		}
	}
}

func TestRandomUnitVector_CoversBothHemispheres(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	up, down := 0, 0
	for i := 0; i < 1000; i++ {
		if RandomUnitVector(random).Y > 0 {
			up++
		} else {
			down++
		}
	}

	// Uniform sampling should split roughly evenly; allow a wide margin
	if up < 350 || down < 350 {
		t.Errorf("Hemisphere split badly skewed: %d up, %d down", up, down)
	}
}

func TestRandomInHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	normal := NewVec3(0, 1, 0)

	for i := 0; i < 1000; i++ {
		p := RandomInHemisphere(normal, random)
		if p.Dot(normal) < 0 {
			t.Fatalf("Sample opposes the normal: %v", p)
		}
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Sample outside unit sphere: %v", p)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the xy-plane, got %v", p)
		}
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}
