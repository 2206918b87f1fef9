package observation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/litescript/ls-nightsky/internal/astro"
)

// Frame is the reference frame of a SkyPosition.
type Frame int

const (
	FrameICRS Frame = iota // equinox-free catalog frame
	FrameFK5               // mean equator and equinox of SkyPosition.Equinox
)

func (f Frame) String() string {
	switch f {
	case FrameICRS:
		return "ICRS"
	case FrameFK5:
		return "FK5"
	default:
		return "unknown"
	}
}

// SkyPosition is a celestial coordinate in a stated frame.
type SkyPosition struct {
	RADeg   float64
	DecDeg  float64
	Frame   Frame
	Equinox astro.Equinox // meaningful for FrameFK5 only
}

// Equatorial returns the bare coordinates.
func (p SkyPosition) Equatorial() astro.Equatorial {
	return astro.Equatorial{RADeg: p.RADeg, DecDeg: p.DecDeg}
}

// EquinoxJD returns the Julian Date of the frame's orientation.
// ICRS is taken as aligned with the J2000 equator.
func (p SkyPosition) EquinoxJD() float64 {
	if p.Frame == FrameFK5 {
		return p.Equinox.JD()
	}
	return astro.JDJ2000
}

// String renders "14:14:02.40 +15:15:00.0 ICRS" or "... FK5 J2000.0".
func (p SkyPosition) String() string {
	s := astro.FormatRA(p.RADeg) + " " + astro.FormatDec(p.DecDeg)
	if p.Frame == FrameFK5 {
		return s + " FK5 " + p.Equinox.String()
	}
	return s + " " + p.Frame.String()
}

// CelestDegrees builds an ICRS position from numeric degrees.
func CelestDegrees(raDeg, decDeg float64) (SkyPosition, error) {
	in := fmt.Sprintf("%v %v", raDeg, decDeg)
	if math.IsNaN(raDeg) || math.IsInf(raDeg, 0) {
		return SkyPosition{}, &ParseError{Input: in, Reason: "right ascension is not finite"}
	}
	if err := checkDec(in, decDeg); err != nil {
		return SkyPosition{}, err
	}
	return SkyPosition{RADeg: normalizeRA(raDeg), DecDeg: decDeg, Frame: FrameICRS}, nil
}

// ParseCelestPair builds an ICRS position from separate RA and Dec tokens.
// Each may be sexagesimal (RA in hours, Dec in degrees), plain decimal
// degrees, or decimal with a unit suffix: "d", "deg", "°" or, for RA, "h".
func ParseCelestPair(ra, dec string) (SkyPosition, error) {
	raDeg, err := parseRA(ra)
	if err != nil {
		return SkyPosition{}, err
	}
	decDeg, err := parseDec(dec)
	if err != nil {
		return SkyPosition{}, err
	}
	return SkyPosition{RADeg: raDeg, DecDeg: decDeg, Frame: FrameICRS}, nil
}

// ParseCelestString parses "RA Dec [equinox]". RA and Dec follow the rules
// of ParseCelestPair; whitespace-separated sexagesimal ("14 14 02.4 +15 15 00")
// is accepted as six fields. Without an equinox the frame is ICRS.
func ParseCelestString(s string) (SkyPosition, error) {
	fields := strings.Fields(s)

	var ra, dec, eq string
	switch len(fields) {
	case 2, 3:
		ra, dec = fields[0], fields[1]
		if len(fields) == 3 {
			eq = fields[2]
		}
	case 6, 7:
		ra = strings.Join(fields[0:3], ":")
		dec = strings.Join(fields[3:6], ":")
		if len(fields) == 7 {
			eq = fields[6]
		}
	default:
		return SkyPosition{}, &ParseError{Input: s, Reason: fmt.Sprintf("want RA, Dec and optional equinox, got %d fields", len(fields))}
	}

	p, err := ParseCelestPair(ra, dec)
	if err != nil {
		return SkyPosition{}, err
	}
	if eq == "" {
		return p, nil
	}

	frame, equinox, err := parseEquinox(eq)
	if err != nil {
		return SkyPosition{}, err
	}
	p.Frame = frame
	p.Equinox = equinox
	return p, nil
}

// degreeSuffixes mark a decimal token as degrees.
var degreeSuffixes = []string{"deg", "d", "°"}

func parseRA(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	if v, ok := withSuffix(tok, degreeSuffixes...); ok {
		return normalizeRA(v), nil
	}
	if v, ok := withSuffix(tok, "h"); ok {
		if v < 0 || v >= 24 {
			return 0, &ParseError{Input: tok, Reason: "hours out of range 0-24"}
		}
		return v * 15, nil
	}
	if isSexagesimal(tok) {
		h, err := astro.ParseSexagesimal(tok)
		if err != nil {
			return 0, &ParseError{Input: tok, Err: err}
		}
		if h < 0 || h >= 24 {
			return 0, &ParseError{Input: tok, Reason: "hours out of range 0-24"}
		}
		return h * 15, nil
	}
	v, err := parseDecimal(tok)
	if err != nil {
		return 0, err
	}
	return normalizeRA(v), nil
}

func parseDec(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	var v float64
	if d, ok := withSuffix(tok, degreeSuffixes...); ok {
		v = d
	} else if isSexagesimal(tok) {
		d, err := astro.ParseSexagesimal(tok)
		if err != nil {
			return 0, &ParseError{Input: tok, Err: err}
		}
		v = d
	} else {
		d, err := parseDecimal(tok)
		if err != nil {
			return 0, err
		}
		v = d
	}
	if err := checkDec(tok, v); err != nil {
		return 0, err
	}
	return v, nil
}

// parseEquinox accepts "J2000", "B1950", "2000.0", or "ICRS". Bare years
// before 1984 are Besselian.
func parseEquinox(tok string) (Frame, astro.Equinox, error) {
	up := strings.ToUpper(strings.TrimSpace(tok))
	if up == "ICRS" {
		return FrameICRS, astro.Equinox{}, nil
	}

	besselian := false
	explicit := false
	switch {
	case strings.HasPrefix(up, "J"):
		up, explicit = up[1:], true
	case strings.HasPrefix(up, "B"):
		up, besselian, explicit = up[1:], true, true
	}

	year, err := strconv.ParseFloat(up, 64)
	if err != nil || year < 1000 || year > 3000 {
		return 0, astro.Equinox{}, &ParseError{Input: tok, Reason: "equinox must be a year such as 2000, J2000 or B1950"}
	}
	if !explicit && year < 1984 {
		besselian = true
	}
	return FrameFK5, astro.Equinox{Year: year, Besselian: besselian}, nil
}

func withSuffix(tok string, suffixes ...string) (float64, bool) {
	for _, s := range suffixes {
		if !strings.HasSuffix(tok, s) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, s), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}
	return 0, false
}

func isSexagesimal(tok string) bool {
	return strings.ContainsAny(tok, ":hmsd°'\" ")
}

func parseDecimal(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Input: tok, Reason: "not a number or sexagesimal value"}
	}
	return v, nil
}

func checkDec(in string, dec float64) error {
	if math.IsNaN(dec) || dec < -90 || dec > 90 {
		return &ParseError{Input: in, Reason: "declination out of range -90 to +90"}
	}
	return nil
}

func normalizeRA(ra float64) float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	return ra
}
