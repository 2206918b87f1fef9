package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name string
		a    Equatorial
		b    Equatorial
		want float64
	}{
		{"same point", Equatorial{100, 20}, Equatorial{100, 20}, 0},
		{"pole to equator", Equatorial{0, 90}, Equatorial{123, 0}, 90},
		{"along the equator", Equatorial{10, 0}, Equatorial{40, 0}, 30},
		{"across RA zero", Equatorial{350, 0}, Equatorial{10, 0}, 20},
		{"antipodes", Equatorial{0, 0}, Equatorial{180, 0}, 180},
		{"pole to pole", Equatorial{0, 90}, Equatorial{0, -90}, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngularSeparation(tt.a, tt.b), 1e-6)
			assert.InDelta(t, tt.want, AngularSeparation(tt.b, tt.a), 1e-6)
		})
	}
}

func TestEventAltitudes(t *testing.T) {
	assert.Less(t, TwilightAltitude, SunriseAltitude)
	assert.Less(t, SunriseAltitude, 0.0)
	assert.Less(t, MoonriseAltitude, 0.0)
}
