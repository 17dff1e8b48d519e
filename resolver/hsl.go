package resolver

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HexToHSL converts "#RRGGBB" (or "#RRGGBBAA", alpha ignored) to hue in
// degrees and saturation/lightness in percent. Unparsable input yields black.
func HexToHSL(hex string) (h, s, l float64) {
	if len(hex) == 9 && strings.HasPrefix(hex, "#") {
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0
	}
	h, s, l = c.Hsl()
	if h >= 360 {
		h -= 360
	}
	return h, s * 100, l * 100
}

// HSLToHex is the inverse of HexToHSL. The result is "#rrggbb" in lowercase.
func HSLToHex(h, s, l float64) string {
	return colorful.Hsl(h, clamp(s)/100, clamp(l)/100).Clamped().Hex()
}
