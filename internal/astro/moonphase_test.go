package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIlluminatedFraction(t *testing.T) {
	const sunDist, moonDist = AU, MeanMoonDistanceKm

	tests := []struct {
		name string
		moon Equatorial
		want float64
		tol  float64
	}{
		{"new", Equatorial{RADeg: 10, DecDeg: 0}, 0, 1e-6},
		{"full", Equatorial{RADeg: 190, DecDeg: 0}, 1, 1e-6},
		{"quarter", Equatorial{RADeg: 100, DecDeg: 0}, 0.5, 0.01},
	}

	sun := Equatorial{RADeg: 10, DecDeg: 0}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IlluminatedFraction(sun, tt.moon, sunDist, moonDist), tt.tol)
		})
	}
}

func TestIlluminatedFraction_Bounded(t *testing.T) {
	sun := Equatorial{RADeg: 45, DecDeg: 17}
	for ra := 0.0; ra < 360; ra += 7 {
		for dec := -30.0; dec <= 30; dec += 10 {
			k := IlluminatedFraction(sun, Equatorial{RADeg: ra, DecDeg: dec}, AU, MeanMoonDistanceKm)
			assert.GreaterOrEqual(t, k, 0.0)
			assert.LessOrEqual(t, k, 1.0)
		}
	}
}

func TestMoonPhaseDescription(t *testing.T) {
	daysToDeg := func(d float64) float64 { return d / SynodicMonth * 360 }

	tests := []struct {
		elong float64
		want  string
	}{
		{0, "at new moon"},
		{360, "at new moon"},
		{daysToDeg(2), "2.0 days after new moon"},
		{90 + daysToDeg(1), "1.0 days after first quarter"},
		{180 - daysToDeg(2), "2.0 days before full moon"},
		{270 - daysToDeg(3.5), "3.5 days before last quarter"},
		{-daysToDeg(1.5), "1.5 days before new moon"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, MoonPhaseDescription(tt.elong))
		})
	}
}
