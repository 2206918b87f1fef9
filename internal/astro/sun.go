package astro

import (
	"math"
)

// Altitudes (degrees) that define the sun and moon events of a night.
const (
	// SunriseAltitude is the geometric altitude of the sun's center at
	// apparent sunrise and sunset (refraction plus semidiameter).
	SunriseAltitude = -0.833

	// TwilightAltitude is the sun altitude that bounds astronomical twilight.
	TwilightAltitude = -18.0

	// MoonriseAltitude is the topocentric altitude of the moon's center at
	// apparent moonrise and moonset.
	MoonriseAltitude = -0.833
)

// AngularSeparation calculates the angular separation between two points on the celestial sphere.
// All coordinates in degrees. Returns separation in degrees.
func AngularSeparation(a, b Equatorial) float64 {
	ra1Rad := degToRad(a.RADeg)
	dec1Rad := degToRad(a.DecDeg)
	ra2Rad := degToRad(b.RADeg)
	dec2Rad := degToRad(b.DecDeg)

	// Haversine formula for angular separation
	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	if h > 1 {
		h = 1
	}

	return radToDeg(2 * math.Asin(math.Sqrt(h)))
}
