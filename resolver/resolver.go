// Package resolver maps free-text Portuguese/English color descriptions such
// as "verde água claro" or "rosa choque" to hex colors.
//
// A Resolver is immutable once built and safe for concurrent use.
package resolver

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// Resolution is the full outcome of resolving one description.
type Resolution struct {
	Text       string     `json:"text"`
	Normalized string     `json:"normalized"`
	Base       string     `json:"base"`
	Modifiers  []Modifier `json:"modifiers"`
	Hex        string     `json:"hex"`
	Quality    Quality    `json:"quality"`
}

// Resolver holds a dictionary and its keyword index.
type Resolver struct {
	entries  []ColorEntry
	index    *KeywordIndex
	fallback string
}

// New builds a resolver over the built-in dictionary. Extra entries are
// indexed ahead of the built-ins, so they win when a keyword collides.
func New(extra ...ColorEntry) (*Resolver, error) {
	for _, e := range extra {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("invalid color entry %q: %w", e.Name, err)
		}
	}

	entries := make([]ColorEntry, 0, len(extra)+len(builtinEntries))
	entries = append(entries, extra...)
	entries = append(entries, Builtin()...)

	return &Resolver{
		entries:  entries,
		index:    NewKeywordIndex(entries),
		fallback: builtinHex(fallbackName),
	}, nil
}

func validateEntry(e ColorEntry) error {
	if !hexPattern.MatchString(e.Hex) {
		return fmt.Errorf("hex %q is not #RRGGBB or #RRGGBBAA", e.Hex)
	}
	if len(e.Keywords) == 0 {
		return errors.New("no keywords")
	}
	for _, kw := range e.Keywords {
		if Normalize(kw) == "" {
			return errors.New("blank keyword")
		}
	}
	return nil
}

func builtinHex(name string) string {
	for _, e := range builtinEntries {
		if e.Name == name {
			return e.Hex
		}
	}
	panic("resolver: built-in color missing: " + name)
}

// Resolve returns the hex color for text. It never fails: descriptions that
// match nothing resolve to the fallback gray.
func (r *Resolver) Resolve(text string) string {
	return r.Explain(text).Hex
}

// Explain resolves text and reports how the result was reached.
func (r *Resolver) Explain(text string) Resolution {
	res := Resolution{Text: text, Normalized: Normalize(text)}

	// Multi-word names like "rosa choque" must match before modifier
	// extraction strips any of their words.
	if hex, ok := r.index.Lookup(res.Normalized); ok {
		res.Base = res.Normalized
		res.Hex = hex
		res.Quality = ExactMatch
		if hex == TransparentHex {
			res.Quality = Transparent
		}
		return res
	}

	res.Base, res.Modifiers = ExtractModifiers(res.Normalized)

	hex, ok := r.index.Lookup(res.Base)
	res.Quality = ModifiedMatch
	if !ok {
		hex = r.fallback
		res.Quality = FallbackGray
	}

	if hex == TransparentHex {
		res.Hex = hex
		res.Quality = Transparent
		return res
	}

	if len(res.Modifiers) > 0 {
		h, s, l := HexToHSL(hex)
		for _, m := range res.Modifiers {
			s, l = m.apply(s, l)
		}
		hex = HSLToHex(h, s, l)
	}
	res.Hex = hex
	return res
}

// Entries returns the dictionary in index precedence order.
func (r *Resolver) Entries() []ColorEntry {
	out := make([]ColorEntry, len(r.entries))
	for i, e := range r.entries {
		out[i] = ColorEntry{Name: e.Name, Hex: e.Hex, Keywords: append([]string(nil), e.Keywords...)}
	}
	return out
}

// Index exposes the keyword index.
func (r *Resolver) Index() *KeywordIndex {
	return r.index
}

// FallbackHex is the gray returned when nothing matches.
func (r *Resolver) FallbackHex() string {
	return r.fallback
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the shared resolver over the built-in dictionary.
func Default() *Resolver {
	return defaultResolver()
}

// Resolve resolves text with the built-in dictionary.
func Resolve(text string) string {
	return Default().Resolve(text)
}
