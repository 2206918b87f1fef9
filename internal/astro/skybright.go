package astro

import "math"

// Optional is a derived quantity that only applies under some conditions.
// When Valid is false, Reason says why the value does not apply.
type Optional struct {
	Value  float64
	Valid  bool
	Reason string
}

// Some returns a valid Optional.
func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

// None returns an Optional that does not apply for the given reason.
func None(reason string) Optional {
	return Optional{Reason: reason}
}

// Reasons a sky brightness estimate does not apply.
const (
	ReasonMoonDown       = "moon is down"
	ReasonTargetDown     = "object is down"
	ReasonMoonNegligible = "moon contribution negligible"
	ReasonSunUp          = "sun is up; no twilight"
)

// VExtinction is the default zenith extinction coefficient in V (mag/airmass).
const VExtinction = 0.172

// MeanMoonDistanceKm is the mean geocentric lunar distance.
const MeanMoonDistanceKm = 384400.0

// LunarSkyInput describes the geometry for a lunar sky brightness estimate.
type LunarSkyInput struct {
	ElongationDeg float64 // moon-sun separation
	MoonTargetDeg float64 // moon-target separation
	MoonAltDeg    float64
	TargetAltDeg  float64
	MoonDistKm    float64
	Extinction    float64 // zenith extinction; VExtinction when zero
}

// LunarSkyBrightness estimates the V surface brightness (mag/arcsec²) of the
// sky at the target due to scattered moonlight, following Krisciunas &
// Schaefer (1991, PASP 103, 1033).
func LunarSkyBrightness(in LunarSkyInput) Optional {
	if in.MoonAltDeg <= 0 {
		return None(ReasonMoonDown)
	}
	if in.TargetAltDeg <= 0 {
		return None(ReasonTargetDown)
	}
	k := in.Extinction
	if k == 0 {
		k = VExtinction
	}
	dist := in.MoonDistKm / MeanMoonDistanceKm
	if dist <= 0 {
		dist = 1
	}

	alpha := math.Abs(180 - in.ElongationDeg) // lunar phase angle
	istar := math.Pow(10, -0.4*(3.84+0.026*alpha+4.0e-9*math.Pow(alpha, 4))) / (dist * dist)
	if alpha < 7 {
		// Opposition surge, tapering to zero 7 degrees from full.
		istar *= 1.35 - 0.05*alpha
	}

	rho := in.MoonTargetDeg
	cosRho := math.Cos(degToRad(rho))
	fRho := math.Pow(10, 5.36) * (1.06 + cosRho*cosRho)
	switch {
	case rho > 10:
		fRho += math.Pow(10, 6.15-rho/40)
	case rho > 0.25:
		fRho += 6.2e7 / (rho * rho)
	default:
		fRho += 9.9e8
	}

	xMoon := scatteringAirmass(90 - in.MoonAltDeg)
	xTarget := scatteringAirmass(90 - in.TargetAltDeg)

	// Surface brightness in nanoLamberts.
	b := fRho * istar * math.Pow(10, -0.4*k*xMoon) * (1 - math.Pow(10, -0.4*k*xTarget))
	if b <= 0.001 {
		return None(ReasonMoonNegligible)
	}
	return Some(22.50 - 2.5*math.Log10(b/34.08))
}

// scatteringAirmass is the airmass form used by the K&S scattering model.
func scatteringAirmass(zenithDeg float64) float64 {
	s := math.Sin(degToRad(zenithDeg))
	x := math.Sqrt(1 - 0.96*s*s)
	if x == 0 {
		return 10000
	}
	return 1 / x
}

// TwilightEnhancement returns how much brighter (in magnitudes) the zenith
// sky is during twilight than at full night, as a function of the sun's
// altitude. A polynomial fit to the zenith twilight decline of Meinel &
// Meinel (1983); zero once the sun is 18 degrees down.
func TwilightEnhancement(sunAltDeg float64) Optional {
	if sunAltDeg > 0 {
		return None(ReasonSunUp)
	}
	if sunAltDeg < TwilightAltitude {
		return Some(0)
	}
	y := (-sunAltDeg - 9.0) / 9.0
	return Some(((2.0635175*y+1.246602)*y-9.4084495)*y + 6.132725)
}
