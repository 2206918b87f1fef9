package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSunBarycentric(t *testing.T) {
	// Jupiter dominates; the offset never exceeds about two solar radii.
	for jde := JDJ2000; jde < JDJ2000+4400; jde += 200 {
		s, err := SunBarycentric(jde)
		require.NoError(t, err)
		assert.Less(t, s.Norm(), 0.011, "jde=%v", jde)
		assert.Greater(t, s.Norm(), 0.0, "jde=%v", jde)
	}
}

func TestEarthBarycentricVelocity(t *testing.T) {
	v, err := EarthBarycentricVelocity(JDJ2000)
	require.NoError(t, err)
	assert.InDelta(t, 30.3, v.Norm(), 0.3)
}

func TestBarycentric_TowardEarth(t *testing.T) {
	// Target on the ecliptic in the direction of Earth from the sun: the
	// signal reaches Earth about one AU before the barycenter.
	earth, err := HeliocentricEcliptic("earth", JDJ2000)
	require.NoError(t, err)
	target := EquatorialFromVector(EclipticToEquatorialVec(earth))

	obs := Observer{LatDeg: 31.96, LonDeg: -111.6, ElevationM: 2120}
	got, err := Barycentric(target, obs, 0, JDJ2000)
	require.NoError(t, err)

	assert.InDelta(t, 490, got.TimeSec, 2)
	// Orbital motion is perpendicular to the sun line at this point.
	assert.Less(t, got.VelKmS, 2.0)
	assert.Greater(t, got.VelKmS, -2.0)
}

func TestBarycentric_Bounded(t *testing.T) {
	obs := Observer{LatDeg: -30.165, LonDeg: -70.815, ElevationM: 2215}
	for jde := JDJ2000; jde < JDJ2000+800; jde += 37 {
		for ra := 0.0; ra < 360; ra += 45 {
			for dec := -60.0; dec <= 60; dec += 30 {
				got, err := Barycentric(Equatorial{RADeg: ra, DecDeg: dec}, obs, ra, jde)
				require.NoError(t, err)
				assert.Less(t, got.TimeSec, 515.0)
				assert.Greater(t, got.TimeSec, -515.0)
				assert.Less(t, got.VelKmS, 31.0)
				assert.Greater(t, got.VelKmS, -31.0)
			}
		}
	}
}
