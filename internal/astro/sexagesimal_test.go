package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSexagesimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"14:14:02.40", 14.234},
		{"14 14 02.4", 14.234},
		{"14h14m02.4s", 14.234},
		{"+15:15:00.0", 15.25},
		{"15d15m00s", 15.25},
		{"-00:30:00", -0.5},
		{"-0:30", -0.5},
		{"12", 12},
		{"  7:30  ", 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSexagesimal(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseSexagesimal_Errors(t *testing.T) {
	for _, in := range []string{"", "-", "ab:cd", "14:61:00", "14:10:60", "1:2:3:4", "14.5:10:00", "12:-3:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSexagesimal(in)
			assert.ErrorIs(t, err, ErrBadSexagesimal)
		})
	}
}

func TestFormatSexagesimal(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ra", FormatRA(213.51), "14:14:02.40"},
		{"ra wraps", FormatRA(-15), "23:00:00.00"},
		{"dec", FormatDec(15.25), "+15:15:00.0"},
		{"negative dec", FormatDec(-0.5), "-00:30:00.0"},
		{"carry", FormatSexagesimal(0.9999999, 1, false), "01:00:00.0"},
		{"hour angle", FormatHourAngle(-30), "-02:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSexagesimalRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.5, -23.456789, 89.999} {
		got, err := ParseSexagesimal(FormatSexagesimal(v, 3, true))
		require.NoError(t, err)
		assert.InDelta(t, v, got, 1e-6)
	}
}
