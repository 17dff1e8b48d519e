package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToHSL(t *testing.T) {
	cases := []struct {
		hex     string
		h, s, l float64
	}{
		{"#FF0000", 0, 100, 50},
		{"#00ff00", 120, 100, 50},
		{"#0000FF", 240, 100, 50},
		{"#FFFFFF", 0, 0, 100},
		{"#000000", 0, 0, 0},
		{"#00000000", 0, 0, 0},
		{"#FF000080", 0, 100, 50},
	}
	for _, tc := range cases {
		t.Run(tc.hex, func(t *testing.T) {
			h, s, l := HexToHSL(tc.hex)
			assert.InDelta(t, tc.h, h, 1e-9)
			assert.InDelta(t, tc.s, s, 1e-9)
			assert.InDelta(t, tc.l, l, 1e-9)
		})
	}
}

func TestHexToHSL_Invalid(t *testing.T) {
	h, s, l := HexToHSL("not a color")
	assert.Zero(t, h)
	assert.Zero(t, s)
	assert.Zero(t, l)
}

func TestHSLToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSLToHex(0, 100, 50))
	assert.Equal(t, "#0000ff", HSLToHex(240, 100, 50))
	assert.Equal(t, "#ffffff", HSLToHex(0, 0, 100))
	assert.Equal(t, "#000000", HSLToHex(0, 0, 0))
	assert.Equal(t, "#808080", HSLToHex(0, 0, 50.2))
}

func TestHSL_RoundTrip(t *testing.T) {
	for _, hex := range []string{"#0e4d64", "#fa8072", "#7f6a00", "#00fa9a", "#ff1493", "#c8a2c8"} {
		h, s, l := HexToHSL(hex)
		assert.Equal(t, hex, HSLToHex(h, s, l))
	}
}
