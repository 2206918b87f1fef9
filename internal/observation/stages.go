package observation

import (
	"time"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/logging"
)

// Sky returns the sky stage result. The error is ErrNotComputed if the
// stage never ran, or ErrStale, together with the old value, if the
// identity changed since.
func (o *Observation) Sky() (SkyState, error) { return current(o.sky, o.gen) }

// SunMoon returns the sun and moon stage result; errors as for Sky.
func (o *Observation) SunMoon() (SunMoonState, error) { return current(o.sunMoon, o.gen) }

// Night returns the night events; errors as for Sky.
func (o *Observation) Night() (NightState, error) { return current(o.night, o.gen) }

// Planets returns a copy of the planets stage result; errors as for Sky.
func (o *Observation) Planets() (PlanetsState, error) {
	p, err := current(o.planets, o.gen)
	return p.clone(), err
}

// Bary returns the barycentric stage result; errors as for Sky.
func (o *Observation) Bary() (BaryState, error) { return current(o.bary, o.gen) }

// Progress reports how far the pipeline has run for the current identity.
func (o *Observation) Progress() Progress {
	if _, err := o.Sky(); err != nil {
		return Uncomputed
	}
	for _, ok := range []bool{
		isCurrent(o.sunMoon, o.gen),
		isCurrent(o.night, o.gen),
		isCurrent(o.planets, o.gen),
		isCurrent(o.bary, o.gen),
	} {
		if !ok {
			return SkyComputed
		}
	}
	return FullyComputed
}

func isCurrent[T any](s *stamped[T], gen uint64) bool {
	return s != nil && s.gen == gen
}

// ComputeAll runs every stage in order and stops at the first failure.
func (o *Observation) ComputeAll() error {
	for _, stage := range []func() error{
		o.ComputeSky,
		o.ComputeSunMoon,
		o.SetNightEvents,
		o.ComputePlanets,
		o.ComputeBary,
	} {
		if err := stage(); err != nil {
			return err
		}
	}
	return nil
}

// ComputeSky derives the target's hour angle, altitude, azimuth, airmass
// and parallactic angle, and its coordinates precessed to the equinox of
// date.
func (o *Observation) ComputeSky() error {
	jd, jde, err := o.provider.JulianDay(o.t)
	if err != nil {
		return &ComputationError{Stage: StageSky, Err: err}
	}
	lst, err := o.provider.LocalSiderealTime(o.t, o.site.LonDeg)
	if err != nil {
		return &ComputationError{Stage: StageSky, Err: err}
	}

	eq := astro.Precess(o.celest.Equatorial(), o.celest.EquinoxJD(), jd)
	ha := astro.HourAngle(lst, eq.RADeg)
	hz := astro.EquatorialToHorizontal(eq, lst, o.site.LatDeg)
	am, status := astro.Airmass(hz.AltDeg)

	o.sky = &stamped[SkyState]{gen: o.gen, v: SkyState{
		JD:             jd,
		JDE:            jde,
		LSTDeg:         lst,
		HADeg:          ha,
		EqOfDate:       eq,
		Equinox:        astro.EquinoxOfDate(jd),
		Horizontal:     hz,
		Airmass:        am,
		AirmassStatus:  status,
		ParallacticDeg: astro.ParallacticAngle(ha, eq.DecDeg, o.site.LatDeg),
	}}

	o.log.Debug("stage computed",
		logging.String("stage", string(StageSky)),
		logging.Float("alt", hz.AltDeg),
		logging.Float("airmass", am),
	)
	return nil
}

// ComputeSunMoon derives the sun and moon positions as seen from the site,
// the lunar phase, and the sky brightening from moonlight and twilight at
// the target. Requires a current ComputeSky.
func (o *Observation) ComputeSunMoon() error {
	sky, err := o.Sky()
	if err != nil {
		return &PreconditionError{Stage: StageSunMoon, Needs: StageSky}
	}

	sun, err := o.provider.Sun(o.t)
	if err != nil {
		return &ComputationError{Stage: StageSunMoon, Err: err}
	}
	moon, err := o.provider.Moon(o.t)
	if err != nil {
		return &ComputationError{Stage: StageSunMoon, Err: err}
	}

	obs := o.site.Observer()
	lat := o.site.LatDeg
	moonEq, moonDist := astro.Topocentric(moon.Eq, moon.DistKm, obs, sky.LSTDeg)

	sunState := BodyState{
		Eq:         sun.Eq,
		Horizontal: astro.EquatorialToHorizontal(sun.Eq, sky.LSTDeg, lat),
		DistKm:     sun.DistKm,
	}
	moonState := BodyState{
		Eq:         moonEq,
		Horizontal: astro.EquatorialToHorizontal(moonEq, sky.LSTDeg, lat),
		DistKm:     moonDist,
	}

	sunSep := astro.AngularSeparation(moonEq, sun.Eq)
	targetSep := astro.AngularSeparation(moonEq, sky.EqOfDate)

	o.sunMoon = &stamped[SunMoonState]{gen: o.gen, v: SunMoonState{
		Sun:              sunState,
		Moon:             moonState,
		MoonSunSepDeg:    sunSep,
		MoonTargetSepDeg: targetSep,
		Illuminated:      astro.IlluminatedFraction(sun.Eq, moon.Eq, sun.DistKm, moon.DistKm),
		Phase:            astro.MoonPhaseDescription(moon.EclLonDeg - sun.EclLonDeg),
		LunarSky: astro.LunarSkyBrightness(astro.LunarSkyInput{
			ElongationDeg: sunSep,
			MoonTargetDeg: targetSep,
			MoonAltDeg:    moonState.Horizontal.AltDeg,
			TargetAltDeg:  sky.Horizontal.AltDeg,
			MoonDistKm:    moonDist,
		}),
		Twilight: astro.TwilightEnhancement(sunState.Horizontal.AltDeg),
	}}

	o.log.Debug("stage computed",
		logging.String("stage", string(StageSunMoon)),
		logging.Float("sun_alt", sunState.Horizontal.AltDeg),
		logging.Float("moon_alt", moonState.Horizontal.AltDeg),
	)
	return nil
}

// ComputePlanets derives each planet's position of date, altitude,
// elongation from the sun and visual magnitude.
func (o *Observation) ComputePlanets() error {
	jd, _, err := o.provider.JulianDay(o.t)
	if err != nil {
		return &ComputationError{Stage: StagePlanets, Err: err}
	}
	lst, err := o.provider.LocalSiderealTime(o.t, o.site.LonDeg)
	if err != nil {
		return &ComputationError{Stage: StagePlanets, Err: err}
	}
	sun, err := o.provider.Sun(o.t)
	if err != nil {
		return &ComputationError{Stage: StagePlanets, Err: err}
	}

	st := PlanetsState{
		Equinox:    astro.EquinoxOfDate(jd),
		Positions:  make(map[string]astro.Equatorial, len(astro.Planets)),
		Magnitudes: make(map[string]float64, len(astro.Planets)),
		Details:    make(map[string]PlanetDetail, len(astro.Planets)),
	}
	for _, name := range astro.Planets {
		pb, err := o.provider.Planet(name, o.t)
		if err != nil {
			return &ComputationError{Stage: StagePlanets, Err: err}
		}
		g := pb.Geometry
		mag, err := astro.PlanetMagnitude(name, g.HelioDistAU, g.GeoDistAU, g.PhaseAngleDeg)
		if err != nil {
			return &ComputationError{Stage: StagePlanets, Err: err}
		}

		st.Positions[name] = pb.Eq
		st.Magnitudes[name] = mag
		st.Details[name] = PlanetDetail{
			Eq:            pb.Eq,
			Horizontal:    astro.EquatorialToHorizontal(pb.Eq, lst, o.site.LatDeg),
			ElongationDeg: astro.AngularSeparation(pb.Eq, sun.Eq),
			DistAU:        g.GeoDistAU,
			Magnitude:     mag,
		}
	}

	o.planets = &stamped[PlanetsState]{gen: o.gen, v: st}
	o.log.Debug("stage computed",
		logging.String("stage", string(StagePlanets)),
		logging.Int("planets", len(st.Positions)),
	)
	return nil
}

// ComputeBary derives the light-time and radial-velocity corrections to
// the solar-system barycenter toward the target. Requires a current
// ComputeSky.
func (o *Observation) ComputeBary() error {
	sky, err := o.Sky()
	if err != nil {
		return &PreconditionError{Stage: StageBary, Needs: StageSky}
	}

	target := astro.Precess(o.celest.Equatorial(), o.celest.EquinoxJD(), astro.JDJ2000)
	c, err := astro.Barycentric(target, o.site.Observer(), sky.LSTDeg, sky.JDE)
	if err != nil {
		return &ComputationError{Stage: StageBary, Err: err}
	}

	o.bary = &stamped[BaryState]{gen: o.gen, v: BaryState{
		TCorrSec: c.TimeSec,
		VCorrKmS: c.VelKmS,
		TBary:    o.t.Add(time.Duration(c.TimeSec * float64(time.Second))),
	}}

	o.log.Debug("stage computed",
		logging.String("stage", string(StageBary)),
		logging.Float("tcorr", c.TimeSec),
		logging.Float("vcorr", c.VelKmS),
	)
	return nil
}
