package observation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-nightsky/internal/astro"
)

func TestCelestFormatsAgree(t *testing.T) {
	const wantRA, wantDec = 213.51, 15.25

	tests := []struct {
		name  string
		parse func() (SkyPosition, error)
	}{
		{"degrees", func() (SkyPosition, error) { return CelestDegrees(213.51, 15.25) }},
		{"colon string", func() (SkyPosition, error) { return ParseCelestString("14:14:02.40 +15:15:00.0") }},
		{"space separated", func() (SkyPosition, error) { return ParseCelestString("14 14 02.4 +15 15 00") }},
		{"unit letters", func() (SkyPosition, error) { return ParseCelestString("14h14m02.4s 15d15m00s") }},
		{"decimal string", func() (SkyPosition, error) { return ParseCelestString("213.51 15.25") }},
		{"pair with suffixes", func() (SkyPosition, error) { return ParseCelestPair("213.51d", "15.25deg") }},
		{"pair in hours", func() (SkyPosition, error) { return ParseCelestPair("14.234h", "+15:15:00") }},
		{"pair mixed", func() (SkyPosition, error) { return ParseCelestPair("14:14:02.4", "15.25") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.parse()
			require.NoError(t, err)
			assert.InDelta(t, wantRA, p.RADeg, 1e-6)
			assert.InDelta(t, wantDec, p.DecDeg, 1e-6)
			assert.Equal(t, FrameICRS, p.Frame)
		})
	}
}

func TestParseCelestString_Equinox(t *testing.T) {
	tests := []struct {
		in    string
		frame Frame
		want  astro.Equinox
	}{
		{"10:00:00 +20:00:00 J2000", FrameFK5, astro.Equinox{Year: 2000}},
		{"10:00:00 +20:00:00 2000.0", FrameFK5, astro.Equinox{Year: 2000}},
		{"10:00:00 +20:00:00 B1950", FrameFK5, astro.Equinox{Year: 1950, Besselian: true}},
		{"10:00:00 +20:00:00 1950", FrameFK5, astro.Equinox{Year: 1950, Besselian: true}},
		{"10:00:00 +20:00:00 j1950", FrameFK5, astro.Equinox{Year: 1950}},
		{"10 00 00 +20 00 00 2025.5", FrameFK5, astro.Equinox{Year: 2025.5}},
		{"10:00:00 +20:00:00 icrs", FrameICRS, astro.Equinox{}},
		{"10:00:00 +20:00:00", FrameICRS, astro.Equinox{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseCelestString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.frame, p.Frame)
			assert.Equal(t, tt.want, p.Equinox)
			assert.InDelta(t, 150, p.RADeg, 1e-9)
			assert.InDelta(t, 20, p.DecDeg, 1e-9)
		})
	}
}

func TestParseCelest_Errors(t *testing.T) {
	tests := []struct {
		name  string
		parse func() (SkyPosition, error)
	}{
		{"one field", func() (SkyPosition, error) { return ParseCelestString("14:14:02") }},
		{"four fields", func() (SkyPosition, error) { return ParseCelestString("1 2 3 4") }},
		{"empty", func() (SkyPosition, error) { return ParseCelestString("") }},
		{"garbage ra", func() (SkyPosition, error) { return ParseCelestString("abc +10") }},
		{"ra hours too big", func() (SkyPosition, error) { return ParseCelestString("25:00:00 +10:00:00") }},
		{"ra minutes too big", func() (SkyPosition, error) { return ParseCelestString("10:61:00 +10:00:00") }},
		{"dec too big", func() (SkyPosition, error) { return ParseCelestString("10:00:00 +95:00:00") }},
		{"dec decimal too small", func() (SkyPosition, error) { return ParseCelestPair("10", "-90.5") }},
		{"bad equinox", func() (SkyPosition, error) { return ParseCelestString("10:00:00 +10:00:00 X2000") }},
		{"equinox out of range", func() (SkyPosition, error) { return ParseCelestString("10:00:00 +10:00:00 J50") }},
		{"hour suffix too big", func() (SkyPosition, error) { return ParseCelestPair("24.5h", "0") }},
		{"dec beyond pole", func() (SkyPosition, error) { return CelestDegrees(10, 91) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse()
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestCelestDegrees_NormalizesRA(t *testing.T) {
	p, err := CelestDegrees(-10, 0)
	require.NoError(t, err)
	assert.InDelta(t, 350, p.RADeg, 1e-9)

	p, err = CelestDegrees(725, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5, p.RADeg, 1e-9)
}

func TestSkyPosition_String(t *testing.T) {
	p, err := ParseCelestString("14:14:02.40 +15:15:00.0")
	require.NoError(t, err)
	assert.Equal(t, "14:14:02.40 +15:15:00.0 ICRS", p.String())

	p, err = ParseCelestString("14:14:02.40 -05:30:00.0 B1950")
	require.NoError(t, err)
	assert.Equal(t, "14:14:02.40 -05:30:00.0 FK5 B1950.0", p.String())
}

func TestSkyPosition_EquinoxJD(t *testing.T) {
	icrs := SkyPosition{Frame: FrameICRS}
	assert.Equal(t, astro.JDJ2000, icrs.EquinoxJD())

	fk5 := SkyPosition{Frame: FrameFK5, Equinox: astro.Equinox{Year: 1950, Besselian: true}}
	assert.InDelta(t, 2433282.4235, fk5.EquinoxJD(), 1e-3)
}
