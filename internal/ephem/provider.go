// Package ephem provides solar-system positions and time scales for an
// observing site.
package ephem

import (
	"errors"
	"time"

	"github.com/litescript/ls-nightsky/internal/astro"
)

// ErrOutOfRange is returned for instants outside the provider's valid span.
var ErrOutOfRange = errors.New("instant outside ephemeris range")

// Body is a geocentric apparent position, equinox of date.
type Body struct {
	Eq        astro.Equatorial
	EclLonDeg float64 // apparent ecliptic longitude
	DistKm    float64
}

// PlanetBody is a planet's apparent position and viewing geometry.
type PlanetBody struct {
	Eq       astro.Equatorial // equinox of date
	Geometry astro.PlanetGeometry
}

// Provider defines the interface for ephemeris sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// JulianDay returns the Julian Date (UT) and Julian Ephemeris Day (TT) of t.
	JulianDay(t time.Time) (jd, jde float64, err error)

	// LocalSiderealTime returns the sidereal time at east longitude lonDeg, in degrees.
	LocalSiderealTime(t time.Time, lonDeg float64) (float64, error)

	// Sun returns the sun's geocentric apparent position.
	Sun(t time.Time) (Body, error)

	// Moon returns the moon's geocentric apparent position.
	Moon(t time.Time) (Body, error)

	// Planet returns a planet's position by lowercase name.
	Planet(name string, t time.Time) (PlanetBody, error)
}

// SiderealMode selects mean or apparent sidereal time.
type SiderealMode int

const (
	SiderealApparent SiderealMode = iota // includes the equation of the equinoxes
	SiderealMean
)

// String returns the mode name.
func (m SiderealMode) String() string {
	switch m {
	case SiderealApparent:
		return "apparent"
	case SiderealMean:
		return "mean"
	default:
		return "unknown"
	}
}

// ParseSiderealMode parses a mode string, defaulting to apparent.
func ParseSiderealMode(s string) SiderealMode {
	switch s {
	case "mean":
		return SiderealMean
	default:
		return SiderealApparent
	}
}
