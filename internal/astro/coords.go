// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
)

// Equatorial holds celestial coordinates in degrees.
type Equatorial struct {
	RADeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Horizontal holds observer-relative coordinates in degrees.
type Horizontal struct {
	AltDeg float64 // Altitude (0=horizon, 90=zenith)
	AzDeg  float64 // Azimuth (0=N, 90=E, 180=S, 270=W)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg     float64 // Latitude in degrees (north positive)
	LonDeg     float64 // Longitude in degrees (east positive)
	ElevationM float64 // Height above sea level in meters
}

// HourAngle returns LST - RA normalized to [-180, 180) degrees.
// Negative values are east of the meridian.
func HourAngle(lstDeg, raDeg float64) float64 {
	return normalizeAngle180(lstDeg - raDeg)
}

// EquatorialToHorizontal converts equatorial coordinates of date to altitude
// and azimuth, given the local sidereal time in degrees and the observer latitude.
//
// Uses standard astronomical conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq Equatorial, lstDeg, latDeg float64) Horizontal {
	ha := degToRad(HourAngle(lstDeg, eq.RADeg))
	dec := degToRad(eq.DecDeg)
	lat := degToRad(latDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	sinAlt = clamp(sinAlt, -1, 1)
	alt := math.Asin(sinAlt)

	// Azimuth from north through east; atan2 keeps the quadrant and behaves at the zenith.
	y := -math.Cos(dec) * math.Sin(ha)
	x := math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(ha)
	az := math.Atan2(y, x)

	return Horizontal{
		AltDeg: radToDeg(alt),
		AzDeg:  normalizeAngle360(radToDeg(az)),
	}
}

// ParallacticAngle returns the angle between the hour circle through the
// object and the great circle through the zenith, in degrees.
// Positive west of the meridian.
func ParallacticAngle(haDeg, decDeg, latDeg float64) float64 {
	ha := degToRad(haDeg)
	dec := degToRad(decDeg)
	lat := degToRad(latDeg)

	y := math.Sin(ha)
	x := math.Tan(lat)*math.Cos(dec) - math.Sin(dec)*math.Cos(ha)
	if x == 0 && y == 0 {
		// Object at the zenith or pole; the angle is undefined.
		return 0
	}
	return radToDeg(math.Atan2(y, x))
}

// EclipticToEquatorial converts ecliptic longitude/latitude to RA/Dec for the
// given obliquity. All angles in degrees.
func EclipticToEquatorial(lonDeg, latDeg, oblDeg float64) Equatorial {
	l := degToRad(lonDeg)
	b := degToRad(latDeg)
	e := degToRad(oblDeg)

	ra := math.Atan2(math.Sin(l)*math.Cos(e)-math.Tan(b)*math.Sin(e), math.Cos(l))
	dec := math.Asin(clamp(math.Sin(b)*math.Cos(e)+math.Cos(b)*math.Sin(e)*math.Sin(l), -1, 1))

	return Equatorial{
		RADeg:  normalizeAngle360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}

// EclipticLongitudeOf returns the ecliptic longitude of an equatorial position
// for the given obliquity, in degrees.
func EclipticLongitudeOf(eq Equatorial, oblDeg float64) float64 {
	ra := degToRad(eq.RADeg)
	dec := degToRad(eq.DecDeg)
	e := degToRad(oblDeg)

	lon := math.Atan2(math.Sin(ra)*math.Cos(e)+math.Tan(dec)*math.Sin(e), math.Cos(ra))
	return normalizeAngle360(radToDeg(lon))
}

// UnitVector returns the direction of an equatorial position as a unit vector.
func (eq Equatorial) UnitVector() Vec3 {
	ra := degToRad(eq.RADeg)
	dec := degToRad(eq.DecDeg)
	return Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// EquatorialFromVector returns the RA/Dec of a vector's direction.
func EquatorialFromVector(v Vec3) Equatorial {
	r := v.Norm()
	if r == 0 {
		return Equatorial{}
	}
	return Equatorial{
		RADeg:  normalizeAngle360(radToDeg(math.Atan2(v.Y, v.X))),
		DecDeg: radToDeg(math.Asin(clamp(v.Z/r, -1, 1))),
	}
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// normalizeAngle180 normalizes an angle to [-180, 180) degrees.
func normalizeAngle180(a float64) float64 {
	a = normalizeAngle360(a)
	if a >= 180 {
		a -= 360
	}
	return a
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
