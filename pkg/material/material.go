package material

import (
	"math"
	"math/rand"

	"github.com/roydaw/go-raytracer/pkg/core"
)

// Kind tags the closed set of material variants. The set is fixed, so
// scattering dispatches on the tag instead of an interface call in the
// per-sample hot path.
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// Material describes how a surface scatters incoming light. The zero
// value is a black Lambertian; use the constructors.
type Material struct {
	Kind            Kind
	Albedo          core.Color // Lambertian and Metal
	Fuzz            float64    // Metal reflection roughness in [0,1]
	RefractiveIndex float64    // Dielectric, > 0
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray, originating at the hit point
	Attenuation core.Color // Color attenuation applied to the scattered ray
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Color) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a metallic material. Fuzz is clamped to [0,1]:
// 0 is a perfect mirror, 1 is very rough.
func NewMetal(albedo core.Color, fuzz float64) *Material {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a clear refractive material such as glass.
// The refractive index must be positive.
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// Scatter produces the attenuated continuation ray for an incoming ray
// hitting this material. The second return is false when the ray is
// absorbed and contributes no radiance.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	default:
		return m.scatterLambertian(rayIn, hit, random)
	}
}

func (m *Material) scatterLambertian(_ core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can cancel the normal almost exactly,
	// leaving a degenerate direction.
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}

func (m *Material) scatterMetal(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	// A fuzzed reflection can end up below the surface; the ray is
	// absorbed in that case.
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	refractionRatio := m.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0), // clear glass absorbs nothing
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's
// approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
