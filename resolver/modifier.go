package resolver

import (
	"fmt"
	"strings"
)

// Modifier is a shade qualifier that transforms a base color.
type Modifier int

const (
	Lighten Modifier = iota
	Darken
	Pastel
	Neon
	Burnt
)

func (m Modifier) String() string {
	switch m {
	case Lighten:
		return "lighten"
	case Darken:
		return "darken"
	case Pastel:
		return "pastel"
	case Neon:
		return "neon"
	case Burnt:
		return "burnt"
	default:
		return "unknown"
	}
}

// MarshalText renders the modifier name in JSON payloads.
func (m Modifier) MarshalText() ([]byte, error) {
	if m < Lighten || m > Burnt {
		return nil, fmt.Errorf("unknown modifier %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText parses a modifier name.
func (m *Modifier) UnmarshalText(b []byte) error {
	for c := Lighten; c <= Burnt; c++ {
		if c.String() == string(b) {
			*m = c
			return nil
		}
	}
	return fmt.Errorf("unknown modifier %q", string(b))
}

// classify reports the modifier a single token names, if any.
// Rules are checked in order; the first that fits wins.
func classify(tok string) (Modifier, bool) {
	switch {
	case strings.HasPrefix(tok, "clar"):
		return Lighten, true
	case strings.HasPrefix(tok, "escur"):
		return Darken, true
	case tok == "pastel":
		return Pastel, true
	case tok == "neon", tok == "fluorescente", tok == "vivo":
		return Neon, true
	case strings.HasPrefix(tok, "queimad"), tok == "burnt":
		return Burnt, true
	}
	return 0, false
}

// ExtractModifiers splits normalized text into the base color phrase and the
// modifiers found in it, in the order they appear.
func ExtractModifiers(normalized string) (string, []Modifier) {
	var (
		base []string
		mods []Modifier
	)
	for _, tok := range strings.Fields(normalized) {
		if m, ok := classify(tok); ok {
			mods = append(mods, m)
			continue
		}
		base = append(base, tok)
	}
	return strings.TrimSpace(strings.Join(base, " ")), mods
}

// apply shifts saturation and lightness, clamping both to [0,100].
func (m Modifier) apply(s, l float64) (float64, float64) {
	switch m {
	case Lighten:
		l += 22
	case Darken:
		l -= 22
	case Pastel:
		s -= 40
		l += 20
	case Neon:
		s += 30
		l += 12
	case Burnt:
		s -= 10
		l -= 15
	}
	return clamp(s), clamp(l)
}

func clamp(v float64) float64 {
	return min(max(v, 0), 100)
}
