package ephem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSiderealMode(t *testing.T) {
	tests := []struct {
		input    string
		expected SiderealMode
	}{
		{"apparent", SiderealApparent},
		{"mean", SiderealMean},
		{"", SiderealApparent},        // default
		{"invalid", SiderealApparent}, // default for unknown
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseSiderealMode(tc.input))
		})
	}
}

func TestSiderealModeString(t *testing.T) {
	tests := []struct {
		mode     SiderealMode
		expected string
	}{
		{SiderealApparent, "apparent"},
		{SiderealMean, "mean"},
		{SiderealMode(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.mode.String())
		})
	}
}
