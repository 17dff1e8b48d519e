package ui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"

	"github.com/kastheco/matiz/resolver"
)

var (
	transparentStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Foreground(colorSubtle).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// opaque strips the alpha byte from "#RRGGBBAA".
func opaque(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}

// ReadableForeground picks a text color that stays legible on hex: a deep
// shade for light backgrounds and a pale tint for dark ones.
func ReadableForeground(hex string) string {
	c := gamut.Hex(opaque(hex))
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	l, _, _ := cf.Lab()
	var fg color.Color
	if l > 0.6 {
		fg = gamut.Darker(c, 0.7)
	} else {
		fg = gamut.Lighter(c, 0.7)
	}
	return gamut.ToHex(fg)
}

// Complement returns the complementary color of hex.
func Complement(hex string) string {
	if hex == resolver.TransparentHex {
		return hex
	}
	return gamut.ToHex(gamut.Complementary(gamut.Hex(opaque(hex))))
}

// Swatch renders label on a block of the given color. Transparent colors get
// an outlined box instead of a background.
func Swatch(hex, label string) string {
	if hex == resolver.TransparentHex {
		return transparentStyle.Render(label)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(opaque(hex))).
		Foreground(lipgloss.Color(ReadableForeground(hex))).
		Padding(0, 2).
		Render(label)
}

// ResolutionLine is one line of `matiz resolve` output.
func ResolutionLine(res resolver.Resolution, swatch bool) string {
	var b strings.Builder
	if swatch {
		b.WriteString(Swatch(res.Hex, strings.ToUpper(res.Hex)))
	} else {
		b.WriteString(res.Hex)
	}
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(res.Text))
	if res.Quality == resolver.FallbackGray {
		b.WriteString("  ")
		b.WriteString(WarningStyle.Render("(no match)"))
	}
	return b.String()
}

// ResolutionDetails renders the explanation lines shown with --details.
func ResolutionDetails(res resolver.Resolution) string {
	mods := make([]string, len(res.Modifiers))
	for i, m := range res.Modifiers {
		mods[i] = m.String()
	}
	modText := "none"
	if len(mods) > 0 {
		modText = strings.Join(mods, ", ")
	}

	lines := []string{
		dimStyle.Render("  normalized: ") + res.Normalized,
		dimStyle.Render("  base:       ") + res.Base,
		dimStyle.Render("  modifiers:  ") + modText,
		dimStyle.Render("  quality:    ") + res.Quality.String(),
		dimStyle.Render("  complement: ") + Complement(res.Hex),
	}
	return strings.Join(lines, "\n")
}
