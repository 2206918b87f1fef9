package astro

import "math"

// AirmassStatus qualifies an airmass value.
type AirmassStatus int

const (
	AirmassNormal       AirmassStatus = iota // altitude high enough for the fit
	AirmassSaturated                         // near the horizon; value pinned at MaxAirmass
	AirmassBelowHorizon                      // object is down; value is meaningless
)

// String returns a short description of the status.
func (s AirmassStatus) String() string {
	switch s {
	case AirmassNormal:
		return "normal"
	case AirmassSaturated:
		return "saturated"
	case AirmassBelowHorizon:
		return "below horizon"
	default:
		return "unknown"
	}
}

// MaxAirmass is reported for objects too close to the horizon for the
// polynomial to be trusted (sec z > maxSecZ).
const MaxAirmass = 58.0

const maxSecZ = 12.0

// hardie holds the coefficients of Hardie's (1962) expansion in (sec z - 1).
var hardie = [4]float64{2.879465e-3, 3.033104e-3, 1.351167e-3, -4.716679e-5}

// Airmass returns the airmass for an object at the given altitude in degrees.
// It equals 1 at the zenith and grows monotonically toward the horizon.
func Airmass(altDeg float64) (float64, AirmassStatus) {
	if altDeg <= 0 {
		return 0, AirmassBelowHorizon
	}

	secz := 1 / math.Sin(degToRad(altDeg))
	if altDeg == 90 {
		secz = 1
	}
	if secz > maxSecZ {
		return MaxAirmass, AirmassSaturated
	}

	u := secz - 1
	var poly float64
	for i := len(hardie) - 1; i >= 0; i-- {
		poly = (poly + hardie[i]) * u
	}
	return secz - poly, AirmassNormal
}
