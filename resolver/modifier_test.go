package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractModifiers(t *testing.T) {
	cases := []struct {
		in       string
		wantBase string
		wantMods []Modifier
	}{
		{"azul", "azul", nil},
		{"verde agua claro", "verde agua", []Modifier{Lighten}},
		{"azul clarinho", "azul", []Modifier{Lighten}},
		{"vermelho escuro", "vermelho", []Modifier{Darken}},
		{"rosa pastel", "rosa", []Modifier{Pastel}},
		{"amarelo neon", "amarelo", []Modifier{Neon}},
		{"verde fluorescente", "verde", []Modifier{Neon}},
		{"laranja vivo", "laranja", []Modifier{Neon}},
		{"laranja queimado", "laranja", []Modifier{Burnt}},
		{"burnt orange", "orange", []Modifier{Burnt}},
		{"escuro azul clara pastel", "azul", []Modifier{Darken, Lighten, Pastel}},
		{"claro", "", []Modifier{Lighten}},
		{"", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			base, mods := ExtractModifiers(tc.in)
			assert.Equal(t, tc.wantBase, base)
			assert.Equal(t, tc.wantMods, mods)
		})
	}
}

func TestModifier_Apply_Clamps(t *testing.T) {
	s, l := Lighten.apply(50, 90)
	assert.Equal(t, 50.0, s)
	assert.Equal(t, 100.0, l)

	s, l = Darken.apply(50, 10)
	assert.Equal(t, 50.0, s)
	assert.Equal(t, 0.0, l)

	s, l = Pastel.apply(20, 50)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 70.0, l)

	s, l = Neon.apply(90, 50)
	assert.Equal(t, 100.0, s)
	assert.Equal(t, 62.0, l)

	s, l = Burnt.apply(50, 50)
	assert.Equal(t, 40.0, s)
	assert.Equal(t, 35.0, l)
}

func TestModifier_TextRoundTrip(t *testing.T) {
	for m := Lighten; m <= Burnt; m++ {
		b, err := m.MarshalText()
		require.NoError(t, err)

		var got Modifier
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, m, got)
	}

	var m Modifier
	assert.Error(t, m.UnmarshalText([]byte("sepia")))
	_, err := Modifier(42).MarshalText()
	assert.Error(t, err)
}
