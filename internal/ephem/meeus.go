package ephem

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-nightsky/internal/astro"
)

const (
	// DefaultTTMinusUTC is TT-UTC in seconds since the 2017 leap second.
	DefaultTTMinusUTC = 69.184

	// MinYear and MaxYear bound the span where the planetary elements hold.
	MinYear = 1800
	MaxYear = 2050
)

// MeeusProvider computes positions with the algorithms of Meeus,
// Astronomical Algorithms, and JPL mean elements for the planets.
type MeeusProvider struct {
	mode       SiderealMode
	ttMinusUTC float64
	minYear    int
	maxYear    int
}

// MeeusOption configures a MeeusProvider.
type MeeusOption func(*MeeusProvider)

// WithSiderealMode selects mean or apparent sidereal time.
func WithSiderealMode(m SiderealMode) MeeusOption {
	return func(p *MeeusProvider) {
		p.mode = m
	}
}

// WithTTMinusUTC overrides TT-UTC in seconds.
func WithTTMinusUTC(sec float64) MeeusOption {
	return func(p *MeeusProvider) {
		p.ttMinusUTC = sec
	}
}

// WithYearRange overrides the accepted span of years.
func WithYearRange(first, last int) MeeusOption {
	return func(p *MeeusProvider) {
		p.minYear = first
		p.maxYear = last
	}
}

// NewMeeusProvider creates a provider with apparent sidereal time.
func NewMeeusProvider(opts ...MeeusOption) *MeeusProvider {
	p := &MeeusProvider{
		mode:       SiderealApparent,
		ttMinusUTC: DefaultTTMinusUTC,
		minYear:    MinYear,
		maxYear:    MaxYear,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name implements Provider.
func (p *MeeusProvider) Name() string {
	return "meeus"
}

// JulianDay implements Provider.
func (p *MeeusProvider) JulianDay(t time.Time) (float64, float64, error) {
	if y := t.UTC().Year(); y < p.minYear || y > p.maxYear {
		return 0, 0, fmt.Errorf("%w: year %d not in %d-%d", ErrOutOfRange, y, p.minYear, p.maxYear)
	}
	jd := julian.TimeToJD(t.UTC())
	return jd, jd + p.ttMinusUTC/86400, nil
}

// LocalSiderealTime implements Provider.
func (p *MeeusProvider) LocalSiderealTime(t time.Time, lonDeg float64) (float64, error) {
	jd, _, err := p.JulianDay(t)
	if err != nil {
		return 0, err
	}

	var st unit.Time
	if p.mode == SiderealMean {
		st = sidereal.Mean(jd)
	} else {
		st = sidereal.Apparent(jd)
	}

	// 86400 s of sidereal time span 360 degrees.
	return normalize360(float64(st)/240 + lonDeg), nil
}

// Sun implements Provider.
func (p *MeeusProvider) Sun(t time.Time) (Body, error) {
	_, jde, err := p.JulianDay(t)
	if err != nil {
		return Body{}, err
	}

	ra, dec := solar.ApparentEquatorial(jde)
	T := base.J2000Century(jde)

	return Body{
		Eq:        astro.Equatorial{RADeg: normalize360(unit.Angle(ra).Deg()), DecDeg: dec.Deg()},
		EclLonDeg: normalize360(solar.ApparentLongitude(T).Deg()),
		DistKm:    solar.Radius(T) * astro.AU,
	}, nil
}

// Moon implements Provider.
func (p *MeeusProvider) Moon(t time.Time) (Body, error) {
	_, jde, err := p.JulianDay(t)
	if err != nil {
		return Body{}, err
	}

	lon, lat, dist := moonposition.Position(jde)
	dpsi, deps := nutation.Nutation(jde)
	obl := nutation.MeanObliquity(jde).Deg() + deps.Deg()
	appLon := normalize360(lon.Deg() + dpsi.Deg())

	return Body{
		Eq:        astro.EclipticToEquatorial(appLon, lat.Deg(), obl),
		EclLonDeg: appLon,
		DistKm:    dist,
	}, nil
}

// Planet implements Provider.
func (p *MeeusProvider) Planet(name string, t time.Time) (PlanetBody, error) {
	jd, jde, err := p.JulianDay(t)
	if err != nil {
		return PlanetBody{}, err
	}

	g, err := astro.GeocentricPlanet(name, jde)
	if err != nil {
		return PlanetBody{}, err
	}

	return PlanetBody{
		Eq:       astro.Precess(g.EqJ2000, astro.JDJ2000, jd),
		Geometry: g,
	}, nil
}

func normalize360(a float64) float64 {
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	return a
}
