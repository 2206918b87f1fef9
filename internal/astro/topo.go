package astro

import (
	"math"
)

// Earth figure and rotation (WGS84).
const (
	// EarthRadius is the equatorial radius in km.
	EarthRadius = 6378.137

	// EarthFlattening is the WGS84 flattening.
	EarthFlattening = 1 / 298.257223563

	// EarthAngularVelocity in rad/s.
	EarthAngularVelocity = 7.2921159e-5
)

// GeocentricPosition returns the observer's position in km in the
// equatorial frame of date, given the local sidereal time in degrees.
// The observer's meridian lies at RA = LST.
func GeocentricPosition(obs Observer, lstDeg float64) Vec3 {
	lat := degToRad(obs.LatDeg)
	h := obs.ElevationM / 1000

	e2 := 2*EarthFlattening - EarthFlattening*EarthFlattening
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	// Prime vertical radius of curvature
	n := EarthRadius / math.Sqrt(1-e2*sinLat*sinLat)

	rho := (n + h) * cosLat
	lst := degToRad(lstDeg)

	return Vec3{
		X: rho * math.Cos(lst),
		Y: rho * math.Sin(lst),
		Z: (n*(1-e2) + h) * sinLat,
	}
}

// GeocentricVelocity returns the observer's velocity in km/s due to Earth
// rotation, in the equatorial frame of date.
func GeocentricVelocity(obs Observer, lstDeg float64) Vec3 {
	p := GeocentricPosition(obs, lstDeg)
	rho := math.Hypot(p.X, p.Y)
	v := rho * EarthAngularVelocity

	// Tangent to the circle of latitude, toward east
	lst := degToRad(lstDeg)
	return Vec3{
		X: -v * math.Sin(lst),
		Y: v * math.Cos(lst),
		Z: 0,
	}
}

// Topocentric converts a geocentric position of date at distKm into the
// position seen by the observer, returning the shifted RA/Dec and the
// topocentric distance. Only matters for the moon.
func Topocentric(geo Equatorial, distKm float64, obs Observer, lstDeg float64) (Equatorial, float64) {
	if distKm <= 0 {
		return geo, distKm
	}
	body := geo.UnitVector().Scale(distKm)
	rel := body.Sub(GeocentricPosition(obs, lstDeg))
	return EquatorialFromVector(rel), rel.Norm()
}
