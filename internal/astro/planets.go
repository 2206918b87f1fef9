package astro

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownPlanet is returned for names outside the major planets.
var ErrUnknownPlanet = errors.New("unknown planet")

// Planets lists the major planets other than Earth, in order from the sun.
var Planets = []string{"mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune"}

// keplerian holds mean orbital elements and their rates per Julian century,
// referred to the mean ecliptic and equinox of J2000.
type keplerian struct {
	a, e, i, l, peri, node [2]float64 // AU, -, deg, deg, deg, deg
}

// JPL approximate elements valid 1800-2050 (Standish, table 1).
// The Earth entry is the Earth-Moon barycenter.
var elements = map[string]keplerian{
	"mercury": {
		a: [2]float64{0.38709927, 0.00000037}, e: [2]float64{0.20563593, 0.00001906},
		i: [2]float64{7.00497902, -0.00594749}, l: [2]float64{252.25032350, 149472.67411175},
		peri: [2]float64{77.45779628, 0.16047689}, node: [2]float64{48.33076593, -0.12534081},
	},
	"venus": {
		a: [2]float64{0.72333566, 0.00000390}, e: [2]float64{0.00677672, -0.00004107},
		i: [2]float64{3.39467605, -0.00078890}, l: [2]float64{181.97909950, 58517.81538729},
		peri: [2]float64{131.60246718, 0.00268329}, node: [2]float64{76.67984255, -0.27769418},
	},
	"earth": {
		a: [2]float64{1.00000261, 0.00000562}, e: [2]float64{0.01671123, -0.00004392},
		i: [2]float64{-0.00001531, -0.01294668}, l: [2]float64{100.46457166, 35999.37244981},
		peri: [2]float64{102.93768193, 0.32327364}, node: [2]float64{0, 0},
	},
	"mars": {
		a: [2]float64{1.52371034, 0.00001847}, e: [2]float64{0.09339410, 0.00007882},
		i: [2]float64{1.84969142, -0.00813131}, l: [2]float64{-4.55343205, 19140.30268499},
		peri: [2]float64{-23.94362959, 0.44441088}, node: [2]float64{49.55953891, -0.29257343},
	},
	"jupiter": {
		a: [2]float64{5.20288700, -0.00011607}, e: [2]float64{0.04838624, -0.00013253},
		i: [2]float64{1.30439695, -0.00183714}, l: [2]float64{34.39644051, 3034.74612775},
		peri: [2]float64{14.72847983, 0.21252668}, node: [2]float64{100.47390909, 0.20469106},
	},
	"saturn": {
		a: [2]float64{9.53667594, -0.00125060}, e: [2]float64{0.05386179, -0.00050991},
		i: [2]float64{2.48599187, 0.00193609}, l: [2]float64{49.95424423, 1222.49362201},
		peri: [2]float64{92.59887831, -0.41897216}, node: [2]float64{113.66242448, -0.28867794},
	},
	"uranus": {
		a: [2]float64{19.18916464, -0.00196176}, e: [2]float64{0.04725744, -0.00004397},
		i: [2]float64{0.77263783, -0.00242939}, l: [2]float64{313.23810451, 428.48202785},
		peri: [2]float64{170.95427630, 0.40805281}, node: [2]float64{74.01692503, 0.04240589},
	},
	"neptune": {
		a: [2]float64{30.06992276, 0.00026291}, e: [2]float64{0.00859048, 0.00005105},
		i: [2]float64{1.77004347, 0.00035372}, l: [2]float64{-55.12002969, 218.45945325},
		peri: [2]float64{44.96476227, -0.32241464}, node: [2]float64{131.78422574, -0.00508664},
	},
}

// HeliocentricEcliptic returns a planet's heliocentric position in AU in the
// ecliptic J2000 frame. "earth" yields the Earth-Moon barycenter.
func HeliocentricEcliptic(name string, jde float64) (Vec3, error) {
	el, ok := elements[name]
	if !ok {
		return Vec3{}, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
	}

	T := (jde - JDJ2000) / 36525
	at := func(p [2]float64) float64 { return p[0] + p[1]*T }

	a := at(el.a)
	e := at(el.e)
	incl := degToRad(at(el.i))
	node := degToRad(at(el.node))
	peri := at(el.peri)
	omega := degToRad(peri) - node
	M := degToRad(normalizeAngle180(at(el.l) - peri))

	E := solveKepler(M, e)
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(omega), math.Sin(omega)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(incl), math.Sin(incl)

	return Vec3{
		X: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		Y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		Z: sw*si*xp + cw*si*yp,
	}, nil
}

// solveKepler solves M = E - e sin E for E by Newton iteration. Radians.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for i := 0; i < 30; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// PlanetGeometry is a planet's apparent geometry from the geocenter.
type PlanetGeometry struct {
	EqJ2000       Equatorial // astrometric direction, equinox J2000
	HelioDistAU   float64    // sun-planet distance r
	GeoDistAU     float64    // earth-planet distance Δ
	EarthSunAU    float64    // earth-sun distance R
	PhaseAngleDeg float64    // sun-planet-earth angle
}

// GeocentricPlanet returns a planet's direction and distances as seen from
// the geocenter, corrected for light time.
func GeocentricPlanet(name string, jde float64) (PlanetGeometry, error) {
	earth, err := HeliocentricEcliptic("earth", jde)
	if err != nil {
		return PlanetGeometry{}, err
	}
	planet, err := HeliocentricEcliptic(name, jde)
	if err != nil {
		return PlanetGeometry{}, err
	}

	geo := planet.Sub(earth)
	// One light-time iteration is ample at this precision.
	tau := LightTimeFromAU(geo.Norm()) / 86400
	planet, err = HeliocentricEcliptic(name, jde-tau)
	if err != nil {
		return PlanetGeometry{}, err
	}
	geo = planet.Sub(earth)

	r := planet.Norm()
	delta := geo.Norm()
	R := earth.Norm()
	cosI := clamp((r*r+delta*delta-R*R)/(2*r*delta), -1, 1)

	return PlanetGeometry{
		EqJ2000:       EquatorialFromVector(EclipticToEquatorialVec(geo)),
		HelioDistAU:   r,
		GeoDistAU:     delta,
		EarthSunAU:    R,
		PhaseAngleDeg: radToDeg(math.Acos(cosI)),
	}, nil
}

// PlanetMagnitude estimates a planet's visual magnitude. Mercury, Venus
// and Mars get empirical phase-angle terms; the outer planets use the
// distance term alone.
func PlanetMagnitude(name string, r, delta, phaseDeg float64) (float64, error) {
	i := phaseDeg
	var v float64
	switch name {
	case "mercury":
		v = -0.42 + 0.0380*i - 0.000273*i*i + 0.000002*i*i*i
	case "venus":
		v = -4.40 + 0.0009*i + 0.000239*i*i - 0.00000065*i*i*i
	case "mars":
		v = -1.52 + 0.016*i
	case "jupiter":
		v = -9.40
	case "saturn":
		v = -8.88
	case "uranus":
		v = -7.19
	case "neptune":
		v = -6.87
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
	}
	return v + 5*math.Log10(r*delta), nil
}
