// Package observation models one (site, target, instant) triple and the
// quantities derived from it by an ordered set of compute stages.
//
// Identity is changed only through setters, each of which validates its
// input before mutating anything. Every identity change bumps a generation
// counter; stage results remember the generation they were computed for, so
// a stage whose prerequisite is out of date is rejected and stale results
// are reported as such by the accessors. An Observation is not safe for
// concurrent mutation; use Clone for independent copies.
package observation

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/ephem"
	"github.com/litescript/ls-nightsky/internal/logging"
	"github.com/litescript/ls-nightsky/internal/site"
	"github.com/litescript/ls-nightsky/internal/timeparse"
)

// Observation is a site, sky position and instant with derived state.
type Observation struct {
	reg      *site.Registry
	provider ephem.Provider
	clock    func() time.Time
	log      *logging.Logger

	site   site.Site
	celest SkyPosition
	t      time.Time // always UTC
	gen    uint64

	sky     *stamped[SkyState]
	sunMoon *stamped[SunMoonState]
	night   *stamped[NightState]
	planets *stamped[PlanetsState]
	bary    *stamped[BaryState]
}

type options struct {
	siteCode string
	celest   *SkyPosition
	t        *time.Time
	clock    func() time.Time
	provider ephem.Provider
	log      *logging.Logger
}

// Option configures New.
type Option func(*options)

// WithSite selects the site by registry code. The default is site.DefaultCode.
func WithSite(code string) Option {
	return func(o *options) {
		o.siteCode = code
	}
}

// WithCelest sets the target. The default is the zenith at the instant.
func WithCelest(p SkyPosition) Option {
	return func(o *options) {
		o.celest = &p
	}
}

// WithTime sets the instant. The default is the clock's now.
func WithTime(t time.Time) Option {
	return func(o *options) {
		o.t = &t
	}
}

// WithClock sets the source of "now".
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithProvider sets the ephemeris source. The default is ephem.NewMeeusProvider().
func WithProvider(p ephem.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New creates an Observation. Defaults resolve in dependency order: the
// site, then the instant, then the zenith target which needs both.
func New(reg *site.Registry, opts ...Option) (*Observation, error) {
	cfg := options{siteCode: site.DefaultCode, clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	if reg == nil {
		var err error
		if reg, err = site.Default(); err != nil {
			return nil, err
		}
	}
	if cfg.provider == nil {
		cfg.provider = ephem.NewMeeusProvider()
	}
	if cfg.log == nil {
		cfg.log = logging.Discard()
	}

	s, err := reg.Lookup(cfg.siteCode)
	if err != nil {
		return nil, err
	}

	o := &Observation{
		reg:      reg,
		provider: cfg.provider,
		clock:    cfg.clock,
		log:      cfg.log,
		site:     s,
	}

	if cfg.t != nil {
		o.t = cfg.t.UTC()
	} else {
		o.t = o.clock().UTC()
	}

	if cfg.celest != nil {
		o.celest = *cfg.celest
	} else {
		z, err := o.zenith()
		if err != nil {
			return nil, err
		}
		o.celest = z
	}

	return o, nil
}

// zenith returns the point overhead at the current site and instant.
func (o *Observation) zenith() (SkyPosition, error) {
	jd, _, err := o.provider.JulianDay(o.t)
	if err != nil {
		return SkyPosition{}, &ComputationError{Stage: StageConstruct, Err: err}
	}
	lst, err := o.provider.LocalSiderealTime(o.t, o.site.LonDeg)
	if err != nil {
		return SkyPosition{}, &ComputationError{Stage: StageConstruct, Err: err}
	}
	return SkyPosition{
		RADeg:   lst,
		DecDeg:  o.site.LatDeg,
		Frame:   FrameFK5,
		Equinox: astro.EquinoxOfDate(jd),
	}, nil
}

// Clone returns an independent copy sharing only the read-only registry,
// provider and logger.
func (o *Observation) Clone() *Observation {
	c := *o
	if o.planets != nil {
		p := *o.planets
		p.v = p.v.clone()
		c.planets = &p
	}
	return &c
}

// Site returns the current site.
func (o *Observation) Site() site.Site { return o.site }

// Celest returns the current target.
func (o *Observation) Celest() SkyPosition { return o.celest }

// Time returns the instant in UTC.
func (o *Observation) Time() time.Time { return o.t }

// LocalTime returns the instant in the site's zone.
func (o *Observation) LocalTime() time.Time { return o.t.In(o.site.Location()) }

// Generation returns the identity generation; it changes on every setter.
func (o *Observation) Generation() uint64 { return o.gen }

// Provider returns the ephemeris source.
func (o *Observation) Provider() ephem.Provider { return o.provider }

func (o *Observation) touch() {
	o.gen++
}

// SetSite replaces the site. Unknown codes return ErrSiteNotFound and leave
// the observation unchanged.
func (o *Observation) SetSite(code string) error {
	s, err := o.reg.Lookup(code)
	if err != nil {
		return err
	}
	o.site = s
	o.touch()
	o.log.Debug("site set", logging.String("site", s.Code))
	return nil
}

// SetCelest replaces the target with an already-built position.
func (o *Observation) SetCelest(p SkyPosition) error {
	if math.IsNaN(p.RADeg) || math.IsInf(p.RADeg, 0) {
		return &ParseError{Input: fmt.Sprint(p.RADeg), Reason: "right ascension is not finite"}
	}
	if err := checkDec(fmt.Sprint(p.DecDeg), p.DecDeg); err != nil {
		return err
	}
	p.RADeg = normalizeRA(p.RADeg)
	o.celest = p
	o.touch()
	return nil
}

// SetCelestZenith points the target overhead for the current site and
// instant, in the equinox of date.
func (o *Observation) SetCelestZenith() error {
	z, err := o.zenith()
	if err != nil {
		return err
	}
	o.celest = z
	o.touch()
	return nil
}

// SetCelestString parses "RA Dec [equinox]"; see ParseCelestString.
func (o *Observation) SetCelestString(s string) error {
	p, err := ParseCelestString(s)
	if err != nil {
		return err
	}
	return o.SetCelest(p)
}

// SetCelestDegrees sets an ICRS target from numeric degrees.
func (o *Observation) SetCelestDegrees(raDeg, decDeg float64) error {
	p, err := CelestDegrees(raDeg, decDeg)
	if err != nil {
		return err
	}
	return o.SetCelest(p)
}

// SetCelestPair sets an ICRS target from separate tokens; see ParseCelestPair.
func (o *Observation) SetCelestPair(ra, dec string) error {
	p, err := ParseCelestPair(ra, dec)
	if err != nil {
		return err
	}
	return o.SetCelest(p)
}

// SetTimeString parses s as a date and time. With useLocal the value is
// wall-clock time in the site's zone, daylight rules included; otherwise it
// is already UTC. Offsets written in s take precedence.
func (o *Observation) SetTimeString(s string, useLocal bool) error {
	t, err := timeparse.Parse(s, o.zoneFor(useLocal))
	if err != nil {
		return &ParseError{Input: s, Err: err}
	}
	return o.SetTimeInstant(t)
}

// SetTimeFields sets the instant from calendar fields; see SetTimeString
// for useLocal. Out-of-range fields, such as month 13, are a *ParseError.
func (o *Observation) SetTimeFields(year, month, day, hour, minute int, second float64, useLocal bool) error {
	t, err := timeparse.FromFields(year, month, day, hour, minute, second, o.zoneFor(useLocal))
	if err != nil {
		in := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%06.3f", year, month, day, hour, minute, second)
		return &ParseError{Input: in, Err: err}
	}
	return o.SetTimeInstant(t)
}

// SetTimeInstant sets an absolute instant.
func (o *Observation) SetTimeInstant(t time.Time) error {
	o.t = t.UTC()
	o.touch()
	o.log.Debug("time set", logging.String("utc", o.t.Format(time.RFC3339)))
	return nil
}

// SetTimeNow sets the instant from the clock.
func (o *Observation) SetTimeNow() error {
	return o.SetTimeInstant(o.clock())
}

func (o *Observation) zoneFor(useLocal bool) *time.Location {
	if useLocal {
		return o.site.Location()
	}
	return time.UTC
}
