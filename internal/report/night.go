package report

import (
	"fmt"
	"io"
	"time"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/observation"
)

// WriteNight writes the sun and moon events of the computed night.
func WriteNight(w io.Writer, o *observation.Observation, st Styles) error {
	p := &printer{w: w, st: st}

	n, err := o.Night()
	if err != nil {
		p.unavailable("night events", err)
		return p.err
	}

	s := o.Site()
	loc := s.Location()
	p.heading(fmt.Sprintf("Night of %s at %s", n.Date.Format("Mon 2006-01-02"), s.Name))
	p.rule()
	for _, e := range n.Events() {
		p.field(e.Name, 18, eventText(e, loc))
	}
	if dark, ok := darkHours(n); ok {
		p.rule()
		p.field("dark time", 18, fmt.Sprintf("%.1f h", dark.Hours()))
	}

	return p.err
}

func eventText(e astro.Event, loc *time.Location) string {
	t, err := e.Time()
	if err != nil {
		return fmt.Sprintf("does not occur (%s)", e.Circumstance)
	}
	return clock(t, loc)
}

// darkHours is the span between the twilight events, when both occur.
func darkHours(n observation.NightState) (time.Duration, bool) {
	if !n.EveningTwilight.Occurred() || !n.MorningTwilight.Occurred() {
		return 0, false
	}
	return n.MorningTwilight.T.Sub(n.EveningTwilight.T), true
}
