package astro

import (
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// SpeedOfLight in km/s.
const SpeedOfLight = 299792.458

// LightTimeAU is the light travel time across one AU, in seconds.
const LightTimeAU = AU / SpeedOfLight

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the scalar product.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// ObliquityJ2000 is the mean obliquity of the ecliptic at J2000.0 in degrees.
const ObliquityJ2000 = 23.4392911

// EclipticToEquatorialVec rotates an ecliptic J2000 vector into the
// equatorial J2000 frame. Units are preserved.
func EclipticToEquatorialVec(ecl Vec3) Vec3 {
	e := degToRad(ObliquityJ2000)
	cosE, sinE := math.Cos(e), math.Sin(e)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// EquatorialToEclipticVec rotates an equatorial J2000 vector into the
// ecliptic J2000 frame.
func EquatorialToEclipticVec(eq Vec3) Vec3 {
	e := degToRad(ObliquityJ2000)
	cosE, sinE := math.Cos(e), math.Sin(e)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// LightTimeFromAU returns the one-way light time in seconds for a distance in AU.
func LightTimeFromAU(au float64) float64 {
	return au * LightTimeAU
}
