package observation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-nightsky/internal/astro"
	"github.com/litescript/ls-nightsky/internal/ephem"
)

func TestStages_Preconditions(t *testing.T) {
	o := newTestObservation(t)

	tests := []struct {
		name  string
		run   func() error
		stage Stage
	}{
		{"sun and moon", o.ComputeSunMoon, StageSunMoon},
		{"barycentric", o.ComputeBary, StageBary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pe *PreconditionError
			require.ErrorAs(t, tt.run(), &pe)
			assert.Equal(t, tt.stage, pe.Stage)
			assert.Equal(t, StageSky, pe.Needs)
		})
	}

	_, err := o.Sky()
	assert.ErrorIs(t, err, ErrNotComputed)
	_, err = o.SunMoon()
	assert.ErrorIs(t, err, ErrNotComputed)
}

func TestStages_IndependentOfSky(t *testing.T) {
	o := newTestObservation(t)

	assert.NoError(t, o.SetNightEvents())
	assert.NoError(t, o.ComputePlanets())
}

func TestStages_StaleAfterMutation(t *testing.T) {
	o := newTestObservation(t)
	require.NoError(t, o.ComputeSky())
	before, err := o.Sky()
	require.NoError(t, err)

	require.NoError(t, o.SetTimeInstant(testInstant.Add(time.Hour)))

	stale, err := o.Sky()
	assert.ErrorIs(t, err, ErrStale)
	assert.Equal(t, before, stale)

	var pe *PreconditionError
	require.ErrorAs(t, o.ComputeSunMoon(), &pe)

	require.NoError(t, o.ComputeSky())
	fresh, err := o.Sky()
	require.NoError(t, err)
	assert.InDelta(t, before.JD+1.0/24, fresh.JD, 1e-8)
	assert.NoError(t, o.ComputeSunMoon())
}

func TestStages_Progress(t *testing.T) {
	o := newTestObservation(t)
	assert.Equal(t, Uncomputed, o.Progress())

	require.NoError(t, o.ComputeSky())
	assert.Equal(t, SkyComputed, o.Progress())

	require.NoError(t, o.ComputeAll())
	assert.Equal(t, FullyComputed, o.Progress())

	require.NoError(t, o.SetCelestDegrees(1, 2))
	assert.Equal(t, Uncomputed, o.Progress())
}

func TestStages_FailureLeavesStateIntact(t *testing.T) {
	fp := &failingProvider{MeeusProvider: ephem.NewMeeusProvider()}
	o := newTestObservation(t, WithProvider(fp))
	require.NoError(t, o.ComputeAll())

	sm, err := o.SunMoon()
	require.NoError(t, err)
	night, err := o.Night()
	require.NoError(t, err)
	planets, err := o.Planets()
	require.NoError(t, err)

	fp.failMoon = true
	var ce *ComputationError
	require.ErrorAs(t, o.ComputeSunMoon(), &ce)
	assert.Equal(t, StageSunMoon, ce.Stage)
	assert.ErrorIs(t, ce, errBoom)

	require.ErrorAs(t, o.SetNightEvents(), &ce)
	assert.Equal(t, StageNight, ce.Stage)

	fp.failSun = true
	require.ErrorAs(t, o.ComputePlanets(), &ce)
	assert.Equal(t, StagePlanets, ce.Stage)

	gotSM, err := o.SunMoon()
	require.NoError(t, err)
	assert.Equal(t, sm, gotSM)
	gotNight, err := o.Night()
	require.NoError(t, err)
	assert.Equal(t, night, gotNight)
	gotPlanets, err := o.Planets()
	require.NoError(t, err)
	assert.Equal(t, planets, gotPlanets)
}

func TestComputeSky_Target(t *testing.T) {
	o := newTestObservation(t)
	require.NoError(t, o.SetCelestString("14:14:02.40 +15:15:00.0 J2000"))
	require.NoError(t, o.ComputeSky())

	sky, err := o.Sky()
	require.NoError(t, err)

	// 18.7 years of precession moves RA east by about 0.22 degrees.
	assert.InDelta(t, 213.51+0.224, sky.EqOfDate.RADeg, 0.02)
	assert.InDelta(t, 2018.7, sky.Equinox.Year, 0.01)
	assert.InDelta(t, astro.HourAngle(sky.LSTDeg, sky.EqOfDate.RADeg), sky.HADeg, 1e-12)
	assert.GreaterOrEqual(t, sky.Horizontal.AzDeg, 0.0)
	assert.Less(t, sky.Horizontal.AzDeg, 360.0)

	if sky.Horizontal.AltDeg > 0 {
		assert.GreaterOrEqual(t, sky.Airmass, 1.0)
		assert.Equal(t, astro.AirmassNormal, sky.AirmassStatus)
	} else {
		assert.Equal(t, astro.AirmassBelowHorizon, sky.AirmassStatus)
	}
}

func TestComputeSky_ICRSMatchesJ2000(t *testing.T) {
	a := newTestObservation(t)
	require.NoError(t, a.SetCelestString("05:35:17.3 -05:23:28"))
	require.NoError(t, a.ComputeSky())

	b := newTestObservation(t)
	require.NoError(t, b.SetCelestString("05:35:17.3 -05:23:28 J2000"))
	require.NoError(t, b.ComputeSky())

	sa, _ := a.Sky()
	sb, _ := b.Sky()
	assert.InDelta(t, sa.EqOfDate.RADeg, sb.EqOfDate.RADeg, 1e-9)
	assert.InDelta(t, sa.EqOfDate.DecDeg, sb.EqOfDate.DecDeg, 1e-9)
}

func TestComputeSunMoon(t *testing.T) {
	o := newTestObservation(t)
	require.NoError(t, o.ComputeSky())
	require.NoError(t, o.ComputeSunMoon())

	sm, err := o.SunMoon()
	require.NoError(t, err)

	// 20:00 MST on 2018-09-14: sun just set, a crescent moon in the west
	// five days after new.
	assert.Less(t, sm.Sun.Horizontal.AltDeg, -10.0)
	assert.Greater(t, sm.Moon.Horizontal.AltDeg, 0.0)
	assert.InDelta(t, 0.3, sm.Illuminated, 0.15)
	assert.Contains(t, sm.Phase, "before first quarter")
	assert.InDelta(t, 384400, sm.Moon.DistKm, 30000)
	assert.InDelta(t, astro.AU, sm.Sun.DistKm, 0.02*astro.AU)
	assert.True(t, sm.Twilight.Valid)
	assert.GreaterOrEqual(t, sm.MoonSunSepDeg, 0.0)
	assert.LessOrEqual(t, sm.MoonSunSepDeg, 180.0)
}

func TestComputeSunMoon_IlluminationRange(t *testing.T) {
	o := newTestObservation(t)
	for day := 0; day < 30; day += 3 {
		require.NoError(t, o.SetTimeInstant(testInstant.AddDate(0, 0, day)))
		require.NoError(t, o.ComputeSky())
		require.NoError(t, o.ComputeSunMoon())

		sm, err := o.SunMoon()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sm.Illuminated, 0.0)
		assert.LessOrEqual(t, sm.Illuminated, 1.0)
		if !sm.LunarSky.Valid {
			assert.NotEmpty(t, sm.LunarSky.Reason)
		}
	}
}

func TestComputeSunMoon_DaytimeTwilight(t *testing.T) {
	o := newTestObservation(t)
	require.NoError(t, o.SetTimeString("2018-09-14 12:00", true))
	require.NoError(t, o.ComputeSky())
	require.NoError(t, o.ComputeSunMoon())

	sm, err := o.SunMoon()
	require.NoError(t, err)
	assert.False(t, sm.Twilight.Valid)
	assert.Equal(t, astro.ReasonSunUp, sm.Twilight.Reason)
}

func TestComputePlanets(t *testing.T) {
	o := newTestObservation(t, WithTime(time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, o.ComputePlanets())

	p, err := o.Planets()
	require.NoError(t, err)
	assert.Len(t, p.Positions, len(astro.Planets))
	assert.Len(t, p.Magnitudes, len(astro.Planets))
	assert.InDelta(t, 2023.84, p.Equinox.Year, 0.01)

	// Jupiter at opposition.
	jup := p.Details["jupiter"]
	assert.InDelta(t, 38.5, jup.Eq.RADeg, 0.5)
	assert.InDelta(t, 13.6, jup.Eq.DecDeg, 0.5)
	assert.Greater(t, jup.ElongationDeg, 170.0)
	assert.InDelta(t, -2.9, p.Magnitudes["jupiter"], 0.2)
	assert.Equal(t, p.Positions["jupiter"], jup.Eq)

	assert.InDelta(t, -4.3, p.Magnitudes["venus"], 0.3)
	for name, d := range p.Details {
		assert.False(t, math.IsNaN(d.Magnitude), name)
		assert.Greater(t, d.DistAU, 0.0, name)
	}
}

func TestComputeBary(t *testing.T) {
	o := newTestObservation(t)

	for _, target := range []string{
		"14:14:02.40 +15:15:00.0",
		"00:00:00 +89:59:00",
		"18:00:00 -66:33:00",
		"06:00:00 +23:26:00 B1950",
	} {
		for month := 0; month < 12; month += 2 {
			require.NoError(t, o.SetCelestString(target))
			require.NoError(t, o.SetTimeInstant(testInstant.AddDate(0, month, 0)))
			require.NoError(t, o.ComputeSky())
			require.NoError(t, o.ComputeBary())

			b, err := o.Bary()
			require.NoError(t, err)
			assert.Less(t, math.Abs(b.TCorrSec), 515.0, target)
			assert.Less(t, math.Abs(b.VCorrKmS), 31.0, target)
			assert.InDelta(t, b.TCorrSec, b.TBary.Sub(o.Time()).Seconds(), 1e-6)
		}
	}
}

func TestComputeBary_EclipticPoleIsSmall(t *testing.T) {
	// The north ecliptic pole is nearly perpendicular to Earth's orbit.
	o := newTestObservation(t)
	require.NoError(t, o.SetCelestString("18:00:00 +66:33:38.6 J2000"))
	require.NoError(t, o.ComputeSky())
	require.NoError(t, o.ComputeBary())

	b, err := o.Bary()
	require.NoError(t, err)
	assert.Less(t, math.Abs(b.TCorrSec), 10.0)
	assert.Less(t, math.Abs(b.VCorrKmS), 1.0)
}
