package astro

import (
	"fmt"
	"math"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.530588853

// IlluminatedFraction returns the illuminated fraction of the moon's disk
// (Meeus eq. 48.2-48.3). Distances may be in any common unit.
func IlluminatedFraction(sun, moon Equatorial, sunDist, moonDist float64) float64 {
	psi := degToRad(AngularSeparation(sun, moon))
	i := math.Atan2(sunDist*math.Sin(psi), moonDist-sunDist*math.Cos(psi))
	k := (1 + math.Cos(i)) / 2
	return clamp(k, 0, 1)
}

// phaseMarks are the principal phases by elongation of the moon east of the sun.
var phaseMarks = []struct {
	elong float64
	name  string
}{
	{0, "new moon"},
	{90, "first quarter"},
	{180, "full moon"},
	{270, "last quarter"},
}

// MoonPhaseDescription describes the lunar phase relative to the nearest
// principal phase, e.g. "2.3 days before first quarter". elongDeg is the
// moon's ecliptic longitude minus the sun's.
func MoonPhaseDescription(elongDeg float64) string {
	elong := normalizeAngle360(elongDeg)

	best := phaseMarks[0]
	bestDiff := normalizeAngle180(elong - best.elong)
	for _, m := range phaseMarks[1:] {
		d := normalizeAngle180(elong - m.elong)
		if math.Abs(d) < math.Abs(bestDiff) {
			best, bestDiff = m, d
		}
	}

	days := bestDiff / 360 * SynodicMonth
	switch {
	case math.Abs(days) < 0.05:
		return "at " + best.name
	case days < 0:
		return fmt.Sprintf("%.1f days before %s", -days, best.name)
	default:
		return fmt.Sprintf("%.1f days after %s", days, best.name)
	}
}
