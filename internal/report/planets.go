package report

import (
	"fmt"
	"io"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/observation"
)

// WritePlanets writes a table of planet positions and magnitudes.
func WritePlanets(w io.Writer, o *observation.Observation, st Styles) error {
	p := &printer{w: w, st: st}

	ps, err := o.Planets()
	if err != nil {
		p.unavailable("planets", err)
		return p.err
	}

	p.heading(fmt.Sprintf("Planets at %s, equinox %s", o.Time().Format(utcLayout+" UT"), ps.Equinox))
	p.rule()
	p.printf("%s\n", st.Label.Render(fmt.Sprintf("%-8s %-12s %-12s %7s %7s %7s %8s %6s",
		"Planet", "RA", "Dec", "Alt", "Az", "Elong", "Dist AU", "Mag")))
	for _, name := range astro.Planets {
		d, ok := ps.Details[name]
		if !ok {
			continue
		}
		row := fmt.Sprintf("%-8s %-12s %-12s %7.1f %7.1f %7.1f %8.3f %6.1f",
			name,
			astro.FormatRA(d.Eq.RADeg),
			astro.FormatDec(d.Eq.DecDeg),
			d.Horizontal.AltDeg,
			d.Horizontal.AzDeg,
			d.ElongationDeg,
			d.DistAU,
			d.Magnitude,
		)
		if d.Horizontal.AltDeg <= 0 {
			row = st.Dim.Render(row)
		}
		p.printf("%s\n", row)
	}

	return p.err
}

// WriteBary writes the barycentric corrections toward the target.
func WriteBary(w io.Writer, o *observation.Observation, st Styles) error {
	p := &printer{w: w, st: st}

	b, err := o.Bary()
	if err != nil {
		p.unavailable("barycentric correction", err)
		return p.err
	}

	p.heading("Barycentric correction")
	p.rule()
	p.field("Target", 14, o.Celest().String())
	p.field("Light time", 14, signed(b.TCorrSec, 3)+" s")
	p.field("Velocity", 14, signed(b.VCorrKmS, 3)+" km/s")
	p.field("Corrected UT", 14, b.TBary.UTC().Format("2006-01-02 15:04:05.000"))

	return p.err
}
