package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLunarSkyBrightness_NotApplicable(t *testing.T) {
	tests := []struct {
		name   string
		in     LunarSkyInput
		reason string
	}{
		{
			name:   "moon down",
			in:     LunarSkyInput{ElongationDeg: 180, MoonTargetDeg: 40, MoonAltDeg: -5, TargetAltDeg: 60},
			reason: ReasonMoonDown,
		},
		{
			name:   "target down",
			in:     LunarSkyInput{ElongationDeg: 180, MoonTargetDeg: 40, MoonAltDeg: 30, TargetAltDeg: -1},
			reason: ReasonTargetDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LunarSkyBrightness(tt.in)
			assert.False(t, got.Valid)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestLunarSkyBrightness_FullMoon(t *testing.T) {
	near := LunarSkyBrightness(LunarSkyInput{
		ElongationDeg: 178, MoonTargetDeg: 10, MoonAltDeg: 45, TargetAltDeg: 50,
		MoonDistKm: MeanMoonDistanceKm,
	})
	far := LunarSkyBrightness(LunarSkyInput{
		ElongationDeg: 178, MoonTargetDeg: 90, MoonAltDeg: 45, TargetAltDeg: 50,
		MoonDistKm: MeanMoonDistanceKm,
	})

	assert.True(t, near.Valid)
	assert.True(t, far.Valid)
	// Brighter sky has a smaller magnitude.
	assert.Less(t, near.Value, far.Value)
	assert.Greater(t, near.Value, 14.0)
	assert.Less(t, far.Value, 22.5)
}

func TestLunarSkyBrightness_PhaseDependence(t *testing.T) {
	geom := func(elong float64) LunarSkyInput {
		return LunarSkyInput{ElongationDeg: elong, MoonTargetDeg: 45, MoonAltDeg: 40, TargetAltDeg: 60}
	}
	full := LunarSkyBrightness(geom(180))
	quarter := LunarSkyBrightness(geom(90))

	assert.True(t, full.Valid)
	assert.True(t, quarter.Valid)
	assert.Less(t, full.Value, quarter.Value)
}

func TestTwilightEnhancement(t *testing.T) {
	up := TwilightEnhancement(5)
	assert.False(t, up.Valid)
	assert.Equal(t, ReasonSunUp, up.Reason)

	dark := TwilightEnhancement(-25)
	assert.True(t, dark.Valid)
	assert.Equal(t, 0.0, dark.Value)

	// Brightening increases steadily as the sun approaches the horizon.
	prev := TwilightEnhancement(-18).Value
	assert.InDelta(t, 0, prev, 0.1)
	for alt := -17.0; alt <= 0; alt++ {
		got := TwilightEnhancement(alt)
		assert.True(t, got.Valid)
		assert.Greater(t, got.Value, prev, "alt=%v", alt)
		prev = got.Value
	}
}

func TestOptional(t *testing.T) {
	assert.Equal(t, Optional{Value: 3, Valid: true}, Some(3))
	assert.Equal(t, Optional{Reason: "x"}, None("x"))
}
