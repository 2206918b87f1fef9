package observation

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/logging"
)

// Event names used in NightState.
const (
	EventSunset          = "sunset"
	EventEveningTwilight = "evening twilight"
	EventNightCenter     = "night center"
	EventMorningTwilight = "morning twilight"
	EventSunrise         = "sunrise"
	EventMoonrise        = "moonrise"
	EventMoonset         = "moonset"
)

// NightWindow returns the local-noon to local-noon span containing t in
// loc. Before local noon the night began on the previous calendar day.
func NightWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	local := t.In(loc)
	y, m, d := local.Date()
	start = time.Date(y, m, d, 12, 0, 0, 0, loc)
	if local.Before(start) {
		start = time.Date(y, m, d-1, 12, 0, 0, 0, loc)
	}
	return start, time.Date(start.Year(), start.Month(), start.Day()+1, 12, 0, 0, 0, loc)
}

// SetNightEvents finds the sun and moon events of the night containing the
// instant. Events that do not happen in the window, as in polar summer,
// are recorded with their circumstance instead of a time.
func (o *Observation) SetNightEvents() error {
	loc := o.site.Location()
	start, end := NightWindow(o.t, loc)

	sunAlt := o.sunAltitude()
	moonAlt := o.moonAltitude()

	set, err := o.sunEvent(EventSunset, sunAlt, start, end, false)
	if err != nil {
		return err
	}
	rise, err := o.sunEvent(EventSunrise, sunAlt, start, end, true)
	if err != nil {
		return err
	}

	evening, err := search(EventEveningTwilight, sunAlt, start, end, astro.TwilightAltitude, false)
	if err != nil {
		return err
	}
	morning, err := search(EventMorningTwilight, sunAlt, start, end, astro.TwilightAltitude, true)
	if err != nil {
		return err
	}

	moonrise, err := search(EventMoonrise, moonAlt, start, end, astro.MoonriseAltitude, true)
	if err != nil {
		return err
	}
	moonset, err := search(EventMoonset, moonAlt, start, end, astro.MoonriseAltitude, false)
	if err != nil {
		return err
	}

	o.night = &stamped[NightState]{gen: o.gen, v: NightState{
		Date:            start,
		Sunset:          set,
		EveningTwilight: evening,
		NightCenter:     nightCenter(start, set, evening, morning, rise),
		MorningTwilight: morning,
		Sunrise:         rise,
		Moonrise:        moonrise,
		Moonset:         moonset,
	}}

	o.log.Debug("stage computed",
		logging.String("stage", string(StageNight)),
		logging.String("night_of", start.Format(time.DateOnly)),
	)
	return nil
}

// sunEvent takes sunset or sunrise from the sunrise tables when the table
// time falls inside the window, and otherwise searches for the crossing.
func (o *Observation) sunEvent(name string, alt astro.AltitudeFunc, start, end time.Time, rising bool) (astro.Event, error) {
	day := start
	if rising {
		day = start.AddDate(0, 0, 1)
	}
	r, s := sunrise.SunriseSunset(o.site.LatDeg, o.site.LonDeg, day.Year(), day.Month(), day.Day())
	t := s
	if rising {
		t = r
	}
	if !t.IsZero() && t.After(start) && t.Before(end) {
		return astro.Event{Name: name, T: t.UTC().Round(time.Second), Circumstance: astro.Occurs}, nil
	}
	return search(name, alt, start, end, astro.SunriseAltitude, rising)
}

func search(name string, alt astro.AltitudeFunc, start, end time.Time, threshold float64, rising bool) (astro.Event, error) {
	t, c, err := astro.FindCrossing(alt, start.UTC(), end.UTC(), threshold, rising, astro.ScanStep)
	if err != nil {
		return astro.Event{}, &ComputationError{Stage: StageNight, Err: err}
	}
	return astro.Event{Name: name, T: t, Circumstance: c}, nil
}

// nightCenter is the midpoint of astronomical night, falling back to the
// midpoint between sunset and sunrise and then to local midnight.
func nightCenter(start time.Time, set, evening, morning, rise astro.Event) astro.Event {
	mid := func(a, b time.Time) astro.Event {
		return astro.Event{Name: EventNightCenter, T: a.Add(b.Sub(a) / 2).Round(time.Second), Circumstance: astro.Occurs}
	}
	switch {
	case evening.Occurred() && morning.Occurred() && evening.T.Before(morning.T):
		return mid(evening.T, morning.T)
	case set.Occurred() && rise.Occurred() && set.T.Before(rise.T):
		return mid(set.T, rise.T)
	default:
		return astro.Event{Name: EventNightCenter, T: start.Add(12 * time.Hour).UTC(), Circumstance: astro.Occurs}
	}
}

func (o *Observation) sunAltitude() astro.AltitudeFunc {
	return func(t time.Time) (float64, error) {
		sun, err := o.provider.Sun(t)
		if err != nil {
			return 0, err
		}
		lst, err := o.provider.LocalSiderealTime(t, o.site.LonDeg)
		if err != nil {
			return 0, err
		}
		return astro.EquatorialToHorizontal(sun.Eq, lst, o.site.LatDeg).AltDeg, nil
	}
}

func (o *Observation) moonAltitude() astro.AltitudeFunc {
	obs := o.site.Observer()
	return func(t time.Time) (float64, error) {
		moon, err := o.provider.Moon(t)
		if err != nil {
			return 0, err
		}
		lst, err := o.provider.LocalSiderealTime(t, o.site.LonDeg)
		if err != nil {
			return 0, err
		}
		eq, _ := astro.Topocentric(moon.Eq, moon.DistKm, obs, lst)
		return astro.EquatorialToHorizontal(eq, lst, o.site.LatDeg).AltDeg, nil
	}
}
