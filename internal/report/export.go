package report

import (
	"io"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/observation"
)

// Snapshot is the JSON-serializable state of an observation. Stages that
// are missing or stale are omitted.
type Snapshot struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Site        SiteExport     `json:"site"`
	Target      TargetExport   `json:"target"`
	Instant     time.Time      `json:"instant"`
	Local       string         `json:"local"`
	Sky         *SkyExport     `json:"sky,omitempty"`
	SunMoon     *SunMoonExport `json:"sun_moon,omitempty"`
	Night       []EventExport  `json:"night,omitempty"`
	Planets     []PlanetExport `json:"planets,omitempty"`
	Bary        *BaryExport    `json:"bary,omitempty"`
}

// SiteExport is a JSON-friendly site.
type SiteExport struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Lon        float64 `json:"lon"`
	Lat        float64 `json:"lat"`
	ElevationM float64 `json:"elevation_m"`
	Zone       string  `json:"zone"`
}

// TargetExport is a JSON-friendly sky position.
type TargetExport struct {
	RA      float64 `json:"ra_deg"`
	Dec     float64 `json:"dec_deg"`
	Frame   string  `json:"frame"`
	Equinox string  `json:"equinox,omitempty"`
}

// SkyExport holds the sky stage.
type SkyExport struct {
	JD          float64 `json:"jd"`
	LST         float64 `json:"lst_deg"`
	HourAngle   float64 `json:"hour_angle_deg"`
	RAOfDate    float64 `json:"ra_of_date_deg"`
	DecOfDate   float64 `json:"dec_of_date_deg"`
	Equinox     string  `json:"equinox"`
	Altitude    float64 `json:"altitude_deg"`
	Azimuth     float64 `json:"azimuth_deg"`
	Airmass     float64 `json:"airmass"`
	AirmassNote string  `json:"airmass_status"`
	Parallactic float64 `json:"parallactic_deg"`
}

// SunMoonExport holds the sun and moon stage.
type SunMoonExport struct {
	SunAlt         float64  `json:"sun_alt_deg"`
	SunAz          float64  `json:"sun_az_deg"`
	MoonAlt        float64  `json:"moon_alt_deg"`
	MoonAz         float64  `json:"moon_az_deg"`
	MoonDistKm     float64  `json:"moon_dist_km"`
	Illuminated    float64  `json:"moon_illuminated"`
	Phase          string   `json:"moon_phase"`
	MoonSunSep     float64  `json:"moon_sun_sep_deg"`
	MoonTargetSep  float64  `json:"moon_target_sep_deg"`
	LunarSky       *float64 `json:"lunar_sky_mag,omitempty"`
	LunarSkyReason string   `json:"lunar_sky_reason,omitempty"`
	Twilight       *float64 `json:"twilight_mag,omitempty"`
	TwilightReason string   `json:"twilight_reason,omitempty"`
}

// EventExport is one night event; Time is nil when it does not occur.
type EventExport struct {
	Name         string     `json:"name"`
	Time         *time.Time `json:"time,omitempty"`
	Circumstance string     `json:"circumstance"`
}

// PlanetExport is one planet.
type PlanetExport struct {
	Name       string  `json:"name"`
	RA         float64 `json:"ra_deg"`
	Dec        float64 `json:"dec_deg"`
	Altitude   float64 `json:"altitude_deg"`
	Azimuth    float64 `json:"azimuth_deg"`
	Elongation float64 `json:"elongation_deg"`
	DistAU     float64 `json:"dist_au"`
	Magnitude  float64 `json:"magnitude"`
}

// BaryExport holds the barycentric stage.
type BaryExport struct {
	TCorrSec float64   `json:"tcorr_s"`
	VCorrKmS float64   `json:"vcorr_km_s"`
	TBary    time.Time `json:"tbary"`
}

// ExportSnapshot converts an observation to an exportable form, including
// only stages that are current.
func ExportSnapshot(o *observation.Observation, generatedAt time.Time) *Snapshot {
	s := o.Site()
	c := o.Celest()

	export := &Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: generatedAt,
		Site: SiteExport{
			Code:       s.Code,
			Name:       s.Name,
			Lon:        s.LonDeg,
			Lat:        s.LatDeg,
			ElevationM: s.ElevationM,
			Zone:       s.Zone,
		},
		Target: TargetExport{
			RA:    c.RADeg,
			Dec:   c.DecDeg,
			Frame: c.Frame.String(),
		},
		Instant: o.Time(),
		Local:   o.LocalTime().Format(localLayout),
	}
	if c.Frame == observation.FrameFK5 {
		export.Target.Equinox = c.Equinox.String()
	}

	if sky, err := o.Sky(); err == nil {
		export.Sky = &SkyExport{
			JD:          sky.JD,
			LST:         sky.LSTDeg,
			HourAngle:   sky.HADeg,
			RAOfDate:    sky.EqOfDate.RADeg,
			DecOfDate:   sky.EqOfDate.DecDeg,
			Equinox:     sky.Equinox.String(),
			Altitude:    sky.Horizontal.AltDeg,
			Azimuth:     sky.Horizontal.AzDeg,
			Airmass:     sky.Airmass,
			AirmassNote: sky.AirmassStatus.String(),
			Parallactic: sky.ParallacticDeg,
		}
	}

	if sm, err := o.SunMoon(); err == nil {
		e := &SunMoonExport{
			SunAlt:        sm.Sun.Horizontal.AltDeg,
			SunAz:         sm.Sun.Horizontal.AzDeg,
			MoonAlt:       sm.Moon.Horizontal.AltDeg,
			MoonAz:        sm.Moon.Horizontal.AzDeg,
			MoonDistKm:    sm.Moon.DistKm,
			Illuminated:   sm.Illuminated,
			Phase:         sm.Phase,
			MoonSunSep:    sm.MoonSunSepDeg,
			MoonTargetSep: sm.MoonTargetSepDeg,
		}
		e.LunarSky, e.LunarSkyReason = optional(sm.LunarSky)
		e.Twilight, e.TwilightReason = optional(sm.Twilight)
		export.SunMoon = e
	}

	if n, err := o.Night(); err == nil {
		for _, ev := range n.Events() {
			ee := EventExport{Name: ev.Name, Circumstance: ev.Circumstance.String()}
			if t, err := ev.Time(); err == nil {
				ee.Time = &t
			}
			export.Night = append(export.Night, ee)
		}
	}

	if ps, err := o.Planets(); err == nil {
		for _, name := range astro.Planets {
			d, ok := ps.Details[name]
			if !ok {
				continue
			}
			export.Planets = append(export.Planets, PlanetExport{
				Name:       name,
				RA:         d.Eq.RADeg,
				Dec:        d.Eq.DecDeg,
				Altitude:   d.Horizontal.AltDeg,
				Azimuth:    d.Horizontal.AzDeg,
				Elongation: d.ElongationDeg,
				DistAU:     d.DistAU,
				Magnitude:  d.Magnitude,
			})
		}
	}

	if b, err := o.Bary(); err == nil {
		export.Bary = &BaryExport{TCorrSec: b.TCorrSec, VCorrKmS: b.VCorrKmS, TBary: b.TBary}
	}

	return export
}

func optional(v astro.Optional) (*float64, string) {
	if !v.Valid {
		return nil, v.Reason
	}
	x := v.Value
	return &x, ""
}

// WriteJSON writes the snapshot as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := jsoniter.ConfigFastest.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
