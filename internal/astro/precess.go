package astro

import (
	"fmt"
	"math"
)

// JDJ2000 is the Julian Date of the J2000.0 epoch.
const JDJ2000 = 2451545.0

// Equinox identifies the orientation of a dated equatorial frame.
type Equinox struct {
	Year      float64
	Besselian bool // B-epochs (e.g. B1950) use the tropical year
}

// J2000 is the standard Julian equinox of 2000.0.
var J2000 = Equinox{Year: 2000}

// JD returns the Julian Date of the equinox.
func (e Equinox) JD() float64 {
	if e.Besselian {
		return 2415020.31352 + (e.Year-1900)*365.242198781
	}
	return JDJ2000 + (e.Year-2000)*365.25
}

// String renders the equinox as "J2000.0" or "B1950.0".
func (e Equinox) String() string {
	prefix := "J"
	if e.Besselian {
		prefix = "B"
	}
	return fmt.Sprintf("%s%.1f", prefix, e.Year)
}

// JulianEpoch returns the Julian epoch (decimal year) of a Julian Date.
func JulianEpoch(jd float64) float64 {
	return 2000 + (jd-JDJ2000)/365.25
}

// EquinoxOfDate returns the Julian equinox matching a Julian Date.
func EquinoxOfDate(jd float64) Equinox {
	return Equinox{Year: JulianEpoch(jd)}
}

// Precess moves a mean position from the equinox at fromJD to the equinox
// at toJD using the IAU 1976 angles (Meeus, Astronomical Algorithms ch. 21).
// Proper motion is ignored.
func Precess(eq Equatorial, fromJD, toJD float64) Equatorial {
	if fromJD == toJD {
		return eq
	}

	T := (fromJD - JDJ2000) / 36525
	t := (toJD - fromJD) / 36525

	// Angles in arcseconds.
	base := 2306.2181 + 1.39656*T - 0.000139*T*T
	zeta := base*t + (0.30188-0.000344*T)*t*t + 0.017998*t*t*t
	z := base*t + (1.09468+0.000066*T)*t*t + 0.018203*t*t*t
	theta := (2004.3109-0.85330*T-0.000217*T*T)*t -
		(0.42665+0.000217*T)*t*t - 0.041833*t*t*t

	zetaR := degToRad(zeta / 3600)
	zR := degToRad(z / 3600)
	thetaR := degToRad(theta / 3600)

	ra0 := degToRad(eq.RADeg)
	dec0 := degToRad(eq.DecDeg)

	A := math.Cos(dec0) * math.Sin(ra0+zetaR)
	B := math.Cos(thetaR)*math.Cos(dec0)*math.Cos(ra0+zetaR) - math.Sin(thetaR)*math.Sin(dec0)
	C := math.Sin(thetaR)*math.Cos(dec0)*math.Cos(ra0+zetaR) + math.Cos(thetaR)*math.Sin(dec0)

	ra := math.Atan2(A, B) + zR
	var dec float64
	if math.Abs(C) > 0.99 {
		// Near the pole the cosine form keeps precision.
		dec = math.Copysign(math.Acos(math.Hypot(A, B)), C)
	} else {
		dec = math.Asin(C)
	}

	return Equatorial{
		RADeg:  normalizeAngle360(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}
