package astro

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadSexagesimal is returned for strings that are not d:m:s or h:m:s.
var ErrBadSexagesimal = errors.New("malformed sexagesimal value")

// sexagesimalReplacer blanks out the field separators.
var sexagesimalReplacer = strings.NewReplacer(
	":", " ",
	"h", " ", "m", " ", "s", " ",
	"d", " ", "°", " ", "'", " ", "\"", " ",
)

// ParseSexagesimal parses "14:14:02.4", "14 14 2.4", "14h14m02.4s" or
// "-0:30:00" into a decimal value in the units of the leading field.
// One to three fields are accepted; only the last may be fractional.
func ParseSexagesimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadSexagesimal)
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	fields := strings.Fields(sexagesimalReplacer.Replace(s))
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadSexagesimal, s)
	}

	var v float64
	scale := 1.0
	for i, f := range fields {
		if i < len(fields)-1 && strings.Contains(f, ".") {
			return 0, fmt.Errorf("%w: fractional non-final field %q", ErrBadSexagesimal, f)
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || x < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, fmt.Errorf("%w: field %q", ErrBadSexagesimal, f)
		}
		if i > 0 && x >= 60 {
			return 0, fmt.Errorf("%w: field %q out of range", ErrBadSexagesimal, f)
		}
		v += x / scale
		scale *= 60
	}

	if neg {
		v = -v
	}
	return v, nil
}

// FormatSexagesimal renders v as [sign]dd:mm:ss.s with the given number of
// decimals on the seconds.
func FormatSexagesimal(v float64, decimals int, signed bool) string {
	sign := ""
	if v < 0 {
		sign = "-"
	} else if signed {
		sign = "+"
	}

	// Round once at the final precision so carries propagate.
	unit := math.Pow10(decimals)
	total := math.Round(math.Abs(v)*3600*unit) / unit
	whole := math.Floor(total / 3600)
	rem := total - whole*3600
	mins := math.Floor(rem / 60)
	secs := rem - mins*60

	width := 2
	if decimals > 0 {
		width = 3 + decimals
	}
	return fmt.Sprintf("%s%02d:%02d:%0*.*f", sign, int(whole), int(mins), width, decimals, secs)
}

// FormatRA renders a right ascension in degrees as hours, "hh:mm:ss.ss".
func FormatRA(raDeg float64) string {
	return FormatSexagesimal(normalizeAngle360(raDeg)/15, 2, false)
}

// FormatDec renders a declination as "+dd:mm:ss.s".
func FormatDec(decDeg float64) string {
	return FormatSexagesimal(decDeg, 1, true)
}

// FormatHourAngle renders an hour angle in degrees as signed hours.
func FormatHourAngle(haDeg float64) string {
	return FormatSexagesimal(haDeg/15, 0, true)
}
