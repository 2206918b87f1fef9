package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Norm(t *testing.T) {
	tests := []struct {
		v    Vec3
		want float64
	}{
		{Vec3{1, 0, 0}, 1},
		{Vec3{3, 4, 0}, 5},
		{Vec3{1, 2, 2}, 3},
		{Vec3{}, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.v.Norm(), 1e-12, "%v", tt.v)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	assert.Equal(t, Vec3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 12, a.Dot(b), 1e-12)
}

func TestEquatorialToEclipticVec(t *testing.T) {
	// The celestial pole tilts toward ecliptic +Y by the obliquity.
	ecl := EquatorialToEclipticVec(Vec3{0, 0, 1})
	obl := degToRad(ObliquityJ2000)

	assert.InDelta(t, 0, ecl.X, 1e-12)
	assert.InDelta(t, math.Sin(obl), ecl.Y, 1e-12)
	assert.InDelta(t, math.Cos(obl), ecl.Z, 1e-12)
}

func TestEclipticEquatorialVecRoundTrip(t *testing.T) {
	original := Vec3{1, 2, 3}
	back := EclipticToEquatorialVec(EquatorialToEclipticVec(original))

	assert.InDelta(t, original.X, back.X, 1e-12)
	assert.InDelta(t, original.Y, back.Y, 1e-12)
	assert.InDelta(t, original.Z, back.Z, 1e-12)
}

func TestLightTimeFromAU(t *testing.T) {
	tests := []struct {
		au       float64
		wantSecs float64
		tolSecs  float64
	}{
		{1, 499.005, 0.01},
		{0, 0, 0.01},
		{5.2, 5.2 * 499.005, 0.1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.wantSecs, LightTimeFromAU(tt.au), tt.tolSecs, "au=%v", tt.au)
	}
}
