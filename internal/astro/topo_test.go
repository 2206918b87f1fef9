package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocentricPosition(t *testing.T) {
	eq := GeocentricPosition(Observer{}, 0)
	assert.InDelta(t, EarthRadius, eq.X, 1e-6)
	assert.InDelta(t, 0, eq.Y, 1e-6)
	assert.InDelta(t, 0, eq.Z, 1e-6)

	pole := GeocentricPosition(Observer{LatDeg: 90}, 0)
	assert.InDelta(t, 6356.752, pole.Z, 0.001)

	// Elevation adds straight up.
	high := GeocentricPosition(Observer{ElevationM: 4000}, 90)
	assert.InDelta(t, EarthRadius+4, high.Y, 1e-6)
}

func TestGeocentricVelocity(t *testing.T) {
	v := GeocentricVelocity(Observer{}, 0)
	assert.InDelta(t, 0.4651, v.Norm(), 0.001)
	assert.InDelta(t, v.Norm(), v.Y, 1e-9)

	// Perpendicular to the position.
	obs := Observer{LatDeg: 31.96, LonDeg: -111.6}
	p := GeocentricPosition(obs, 123)
	assert.InDelta(t, 0, p.Dot(GeocentricVelocity(obs, 123)), 1e-9)
}

func TestTopocentric_Moon(t *testing.T) {
	const dist = MeanMoonDistanceKm
	obs := Observer{}

	// Overhead the moon is one Earth radius closer and unshifted.
	zen, d := Topocentric(Equatorial{RADeg: 0, DecDeg: 0}, dist, obs, 0)
	assert.InDelta(t, dist-EarthRadius, d, 1e-6)
	assert.InDelta(t, 0, AngularSeparation(zen, Equatorial{}), 1e-9)

	// On the horizon the full horizontal parallax pushes it down.
	geo := Equatorial{RADeg: 90, DecDeg: 0}
	topo, _ := Topocentric(geo, dist, obs, 0)
	alt := EquatorialToHorizontal(topo, 0, 0).AltDeg
	p := radToDeg(math.Asin(EarthRadius / dist))
	assert.InDelta(t, -p, alt, 0.01)

	same, d := Topocentric(geo, 0, obs, 0)
	assert.Equal(t, geo, same)
	assert.Equal(t, 0.0, d)
}
