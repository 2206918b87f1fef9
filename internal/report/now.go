package report

import (
	"fmt"
	"io"
	"time"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/observation"
)

const (
	localLayout = "2006-01-02 15:04:05 MST"
	utcLayout   = "2006-01-02 15:04:05"
)

// WriteNow writes the site, target and instant followed by the sky and
// sun/moon stage results.
func WriteNow(w io.Writer, o *observation.Observation, st Styles) error {
	p := &printer{w: w, st: st}

	writeHeader(p, o)
	p.rule()
	writeSky(p, o)
	p.rule()
	writeSunMoon(p, o)

	return p.err
}

func writeHeader(p *printer, o *observation.Observation) {
	s := o.Site()
	p.heading(fmt.Sprintf("%s (%s)", s.Name, s.Code))
	p.printf("%s\n", p.st.Dim.Render(fmt.Sprintf("lon %s  lat %s  elev %.0f m  zone %s",
		signed(s.LonDeg, 3), signed(s.LatDeg, 3), s.ElevationM, s.Zone)))
	p.field("Local", 8, o.LocalTime().Format(localLayout))
	p.field("UT", 8, o.Time().Format(utcLayout))
	p.field("Target", 8, o.Celest().String())
}

func writeSky(p *printer, o *observation.Observation) {
	sky, err := o.Sky()
	if err != nil {
		p.unavailable("sky", err)
		return
	}

	p.field("JD", 12, fmt.Sprintf("%.5f", sky.JD))
	p.field("LST", 12, astro.FormatRA(sky.LSTDeg))
	p.field("Of date", 12, fmt.Sprintf("%s %s %s",
		astro.FormatRA(sky.EqOfDate.RADeg), astro.FormatDec(sky.EqOfDate.DecDeg), sky.Equinox))
	p.field("Hour angle", 12, astro.FormatHourAngle(sky.HADeg))
	p.field("Altitude", 12, fmt.Sprintf("%.2f   azimuth %.2f", sky.Horizontal.AltDeg, sky.Horizontal.AzDeg))
	p.field("Airmass", 12, airmassText(sky.Airmass, sky.AirmassStatus))
	p.field("Parallactic", 12, fmt.Sprintf("%.1f", sky.ParallacticDeg))
}

func airmassText(x float64, s astro.AirmassStatus) string {
	switch s {
	case astro.AirmassBelowHorizon:
		return "object is down"
	case astro.AirmassSaturated:
		return fmt.Sprintf("> %.0f", astro.MaxAirmass)
	default:
		return fmt.Sprintf("%.3f", x)
	}
}

func writeSunMoon(p *printer, o *observation.Observation) {
	sm, err := o.SunMoon()
	if err != nil {
		p.unavailable("sun and moon", err)
		return
	}

	body := func(label string, b observation.BodyState) {
		p.field(label, 12, fmt.Sprintf("%s %s   alt %6.2f  az %6.2f",
			astro.FormatRA(b.Eq.RADeg), astro.FormatDec(b.Eq.DecDeg), b.Horizontal.AltDeg, b.Horizontal.AzDeg))
	}
	body("Sun", sm.Sun)
	body("Moon", sm.Moon)

	p.field("Moon phase", 12, fmt.Sprintf("%.2f illuminated, %s", sm.Illuminated, sm.Phase))
	p.field("Moon dist", 12, fmt.Sprintf("%.0f km", sm.Moon.DistKm))
	p.field("Separation", 12, fmt.Sprintf("moon-sun %.1f  moon-target %.1f", sm.MoonSunSepDeg, sm.MoonTargetSepDeg))
	p.field("Lunar sky", 12, optionalText(sm.LunarSky, "%.2f mag/arcsec²"))
	p.field("Twilight", 12, optionalText(sm.Twilight, "%.2f mag brighter at zenith"))
}

func optionalText(v astro.Optional, format string) string {
	if !v.Valid {
		return v.Reason
	}
	return fmt.Sprintf(format, v.Value)
}

// clock formats an instant as local hours and minutes with UT alongside.
func clock(t time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s  (%s UT)", t.In(loc).Format("Mon 15:04 MST"), t.UTC().Format("15:04"))
}
