package observation

import (
	"maps"
	"time"

	"github.com/litescript/ls-nightsky/internal/astro"
)

// Progress summarizes which stages are current.
type Progress int

const (
	Uncomputed    Progress = iota // sky stage not current
	SkyComputed                   // sky current, some later stage missing
	FullyComputed                 // every stage current
)

func (p Progress) String() string {
	switch p {
	case Uncomputed:
		return "uncomputed"
	case SkyComputed:
		return "sky computed"
	case FullyComputed:
		return "fully computed"
	default:
		return "unknown"
	}
}

// SkyState is produced by ComputeSky.
type SkyState struct {
	JD             float64 // UT
	JDE            float64 // TT
	LSTDeg         float64
	HADeg          float64
	EqOfDate       astro.Equatorial
	Equinox        astro.Equinox // equinox of EqOfDate
	Horizontal     astro.Horizontal
	Airmass        float64
	AirmassStatus  astro.AirmassStatus
	ParallacticDeg float64
}

// BodyState is a sun or moon position as seen from the site.
type BodyState struct {
	Eq         astro.Equatorial // equinox of date
	Horizontal astro.Horizontal
	DistKm     float64
}

// SunMoonState is produced by ComputeSunMoon.
type SunMoonState struct {
	Sun              BodyState
	Moon             BodyState // topocentric
	MoonSunSepDeg    float64
	MoonTargetSepDeg float64
	Illuminated      float64 // fraction in [0, 1]
	Phase            string
	LunarSky         astro.Optional // mag/arcsec² from scattered moonlight
	Twilight         astro.Optional // zenith brightening in magnitudes
}

// NightState is produced by SetNightEvents.
type NightState struct {
	Date            time.Time // local noon starting the night
	Sunset          astro.Event
	EveningTwilight astro.Event
	NightCenter     astro.Event
	MorningTwilight astro.Event
	Sunrise         astro.Event
	Moonrise        astro.Event
	Moonset         astro.Event
}

// Events returns the events in chronological order of definition.
func (n NightState) Events() []astro.Event {
	return []astro.Event{
		n.Sunset, n.EveningTwilight, n.NightCenter, n.MorningTwilight,
		n.Sunrise, n.Moonrise, n.Moonset,
	}
}

// PlanetDetail holds everything computed for one planet.
type PlanetDetail struct {
	Eq            astro.Equatorial // equinox of date
	Horizontal    astro.Horizontal
	ElongationDeg float64
	DistAU        float64
	Magnitude     float64
}

// PlanetsState is produced by ComputePlanets.
type PlanetsState struct {
	Equinox    astro.Equinox
	Positions  map[string]astro.Equatorial
	Magnitudes map[string]float64
	Details    map[string]PlanetDetail
}

func (p PlanetsState) clone() PlanetsState {
	p.Positions = maps.Clone(p.Positions)
	p.Magnitudes = maps.Clone(p.Magnitudes)
	p.Details = maps.Clone(p.Details)
	return p
}

// BaryState is produced by ComputeBary. TBary is Instant plus the light
// time correction, in the same time scale as Instant; it is not TDB.
type BaryState struct {
	TCorrSec float64
	VCorrKmS float64
	TBary    time.Time
}

// stamped pairs a stage result with the identity generation it used.
type stamped[T any] struct {
	gen uint64
	v   T
}

func current[T any](s *stamped[T], gen uint64) (T, error) {
	var zero T
	if s == nil {
		return zero, ErrNotComputed
	}
	if s.gen != gen {
		return s.v, ErrStale
	}
	return s.v, nil
}
