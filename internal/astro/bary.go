package astro

// massRatios are the sun/planet mass ratios used to locate the barycenter.
// The Earth entry covers the Earth-Moon system.
var massRatios = []struct {
	name  string
	ratio float64
}{
	{"mercury", 6023600},
	{"venus", 408523.71},
	{"earth", 328900.56},
	{"mars", 3098708},
	{"jupiter", 1047.3486},
	{"saturn", 3497.898},
	{"uranus", 22902.98},
	{"neptune", 19412.24},
}

// SunBarycentric returns the sun's position relative to the solar-system
// barycenter in AU, ecliptic J2000.
func SunBarycentric(jde float64) (Vec3, error) {
	var sum Vec3
	var mu float64
	for _, m := range massRatios {
		p, err := HeliocentricEcliptic(m.name, jde)
		if err != nil {
			return Vec3{}, err
		}
		sum = sum.Add(p.Scale(1 / m.ratio))
		mu += 1 / m.ratio
	}
	return sum.Scale(-1 / (1 + mu)), nil
}

// EarthBarycentric returns the geocenter's barycentric position (AU) in the
// equatorial J2000 frame.
func EarthBarycentric(jde float64) (Vec3, error) {
	sun, err := SunBarycentric(jde)
	if err != nil {
		return Vec3{}, err
	}
	emb, err := HeliocentricEcliptic("earth", jde)
	if err != nil {
		return Vec3{}, err
	}
	return EclipticToEquatorialVec(emb.Add(sun)), nil
}

// baryStep is the half-width in days of the velocity difference.
const baryStep = 0.05

// EarthBarycentricVelocity returns the geocenter's barycentric velocity in
// km/s, equatorial J2000, by central difference.
func EarthBarycentricVelocity(jde float64) (Vec3, error) {
	before, err := EarthBarycentric(jde - baryStep)
	if err != nil {
		return Vec3{}, err
	}
	after, err := EarthBarycentric(jde + baryStep)
	if err != nil {
		return Vec3{}, err
	}
	return after.Sub(before).Scale(AU / (2 * baryStep * 86400)), nil
}

// BaryCorrection holds the barycentric corrections for a target.
type BaryCorrection struct {
	TimeSec float64 // light-time offset to add to the observed instant
	VelKmS  float64 // radial-velocity correction, positive toward the target
}

// Barycentric computes the light-time and radial-velocity corrections from
// an observer to the solar-system barycenter for a target direction in the
// J2000 equatorial frame. lstDeg orients the observer's offset from the
// geocenter.
func Barycentric(target Equatorial, obs Observer, lstDeg, jde float64) (BaryCorrection, error) {
	pos, err := EarthBarycentric(jde)
	if err != nil {
		return BaryCorrection{}, err
	}
	vel, err := EarthBarycentricVelocity(jde)
	if err != nil {
		return BaryCorrection{}, err
	}

	obsPos := pos.Scale(AU).Add(GeocentricPosition(obs, lstDeg))
	obsVel := vel.Add(GeocentricVelocity(obs, lstDeg))
	n := target.UnitVector()

	return BaryCorrection{
		TimeSec: obsPos.Dot(n) / SpeedOfLight,
		VelKmS:  obsVel.Dot(n),
	}, nil
}
