package resolver

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Scenarios(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"azul petróleo", "#0E4D64"},
		{"verde água claro", "#6bffc6"},
		{"rosa choque", "#FF1493"},
		{"mostarda escura", "#7F6A00"},
		{"transparente", "#00000000"},
		{"salmão", "#FA8072"},
		{"salmao", "#FA8072"},
		{"Salmão", "#FA8072"},
		{"  ROSA-CHOQUE ", "#FF1493"},
		{"rosa pastel", "#ffffff"},
		{"amarelo neon", "#ffff3d"},
		{"laranja queimado", "#aa7109"},
		{"claro", "#b8b8b8"},
		{"", "#808080"},
		{"xadrez", "#808080"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.in))
		})
	}
}

func TestResolve_EveryKeyword(t *testing.T) {
	r := Default()
	seen := make(map[string]string)
	for _, e := range Builtin() {
		for _, kw := range e.Keywords {
			norm := Normalize(kw)
			if prev, dup := seen[norm]; dup {
				require.Equal(t, prev, e.Hex, "keyword %q maps to two colors", kw)
			}
			seen[norm] = e.Hex

			assert.Equal(t, e.Hex, r.Resolve(kw), "keyword %q", kw)
			assert.Equal(t, e.Hex, r.Resolve(strings.ToUpper(kw)), "keyword %q uppercased", kw)
		}
	}
}

func TestResolve_TransparentIgnoresModifiers(t *testing.T) {
	for _, in := range []string{"transparente", "transparente claro", "Transparente Escuro Neon", "incolor pastel", "cristal queimado"} {
		res := Default().Explain(in)
		assert.Equal(t, TransparentHex, res.Hex, in)
		assert.Equal(t, Transparent, res.Quality, in)
	}
}

func TestResolve_LightenThenDarkenNetsOriginal(t *testing.T) {
	for _, base := range []string{"azul", "vermelho", "verde", "roxo", "azul petroleo"} {
		original := strings.ToLower(Resolve(base))
		assert.Equal(t, original, Resolve(base+" claro escuro"), base)
		assert.Equal(t, original, Resolve(base+" escuro claro"), base)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Resolve("verde água claro")
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, "#6bffc6", got)
	}
}

func TestExplain_Quality(t *testing.T) {
	r := Default()

	res := r.Explain("Rosa Choque")
	assert.Equal(t, ExactMatch, res.Quality)
	assert.Equal(t, "rosa choque", res.Normalized)
	assert.Empty(t, res.Modifiers)

	res = r.Explain("verde água claro")
	assert.Equal(t, ModifiedMatch, res.Quality)
	assert.Equal(t, "verde agua", res.Base)
	assert.Equal(t, []Modifier{Lighten}, res.Modifiers)

	res = r.Explain("azul bonito")
	assert.Equal(t, FallbackGray, res.Quality)
	assert.Equal(t, r.FallbackHex(), res.Hex)

	res = r.Explain("transparente")
	assert.Equal(t, Transparent, res.Quality)
}

func TestNew_ExtraEntriesWin(t *testing.T) {
	r, err := New(
		ColorEntry{Name: "azul da casa", Hex: "#123456", Keywords: []string{"azul"}},
		ColorEntry{Name: "verde musgo escuro", Hex: "#2F3A1F", Keywords: []string{"musgo fechado"}},
	)
	require.NoError(t, err)

	assert.Equal(t, "#123456", r.Resolve("azul"))
	assert.Equal(t, "#2F3A1F", r.Resolve("Musgo Fechado"))
	assert.Equal(t, "#808080", r.FallbackHex())
	assert.Equal(t, "#0000FF", Resolve("azul"), "default resolver is unaffected")
	assert.Equal(t, "azul da casa", r.Entries()[0].Name)
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	cases := []ColorEntry{
		{Name: "sem hex", Hex: "123456", Keywords: []string{"x"}},
		{Name: "curto", Hex: "#123", Keywords: []string{"x"}},
		{Name: "sem palavras", Hex: "#123456"},
		{Name: "em branco", Hex: "#123456", Keywords: []string{"  "}},
	}
	for _, e := range cases {
		t.Run(e.Name, func(t *testing.T) {
			_, err := New(e)
			assert.Error(t, err)
		})
	}
}

func TestKeywordIndex_Order(t *testing.T) {
	idx := NewKeywordIndex([]ColorEntry{
		{Name: "a", Hex: "#000001", Keywords: []string{"ab", "abcd"}},
		{Name: "b", Hex: "#000002", Keywords: []string{"abc", "ab"}},
	})
	entries := idx.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "abcd", entries[0].Keyword)
	assert.Equal(t, "abc", entries[1].Keyword)

	// equal keywords keep dictionary order
	hex, ok := idx.Lookup("ab")
	require.True(t, ok)
	assert.Equal(t, "#000001", hex)

	_, ok = idx.Lookup("a")
	assert.False(t, ok, "prefixes never match")
}
