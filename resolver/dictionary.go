package resolver

// ColorEntry is one named color and every alias it answers to.
type ColorEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Hex      string   `json:"hex" yaml:"hex"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

const (
	// TransparentHex is returned verbatim and never shaded.
	TransparentHex = "#00000000"

	fallbackName = "cinza"
)

// builtinEntries is Portuguese-first, with English synonyms.
var builtinEntries = []ColorEntry{
	// neutrals
	{Name: "branco", Hex: "#FFFFFF", Keywords: []string{"branco", "branca", "white"}},
	{Name: "off-white", Hex: "#F8F8F0", Keywords: []string{"off-white", "gelo", "ice"}},
	{Name: "creme", Hex: "#FFFDD0", Keywords: []string{"creme", "cream", "marfim", "ivory"}},
	{Name: "preto", Hex: "#000000", Keywords: []string{"preto", "preta", "negro", "black"}},
	{Name: "cinza", Hex: "#808080", Keywords: []string{"cinza", "cinzento", "gray", "grey"}},
	{Name: "cinza claro", Hex: "#D3D3D3", Keywords: []string{"cinza claro", "light gray", "light grey"}},
	{Name: "grafite", Hex: "#41424C", Keywords: []string{"grafite", "graphite"}},
	{Name: "chumbo", Hex: "#5A5A5A", Keywords: []string{"chumbo", "lead"}},
	{Name: "transparente", Hex: TransparentHex, Keywords: []string{"transparente", "transparent", "incolor", "cristal"}},

	// reds and pinks
	{Name: "vermelho", Hex: "#FF0000", Keywords: []string{"vermelho", "vermelha", "red"}},
	{Name: "vinho", Hex: "#722F37", Keywords: []string{"vinho", "wine", "bordo", "bordô", "burgundy", "marsala"}},
	{Name: "carmim", Hex: "#960018", Keywords: []string{"carmim", "carmine"}},
	{Name: "rosa", Hex: "#FFC0CB", Keywords: []string{"rosa", "pink"}},
	{Name: "rosa choque", Hex: "#FF1493", Keywords: []string{"rosa choque", "pink choque", "hot pink"}},
	{Name: "rosa bebê", Hex: "#F4C2C2", Keywords: []string{"rosa bebê", "baby pink"}},
	{Name: "salmão", Hex: "#FA8072", Keywords: []string{"salmão", "salmon"}},
	{Name: "coral", Hex: "#FF7F50", Keywords: []string{"coral"}},
	{Name: "pêssego", Hex: "#FFDAB9", Keywords: []string{"pêssego", "peach"}},
	{Name: "magenta", Hex: "#FF00FF", Keywords: []string{"magenta", "fúcsia", "fucsia", "fuchsia"}},

	// oranges and yellows
	{Name: "laranja", Hex: "#FFA500", Keywords: []string{"laranja", "orange", "alaranjado"}},
	{Name: "terracota", Hex: "#E2725B", Keywords: []string{"terracota", "terracotta"}},
	{Name: "amarelo", Hex: "#FFFF00", Keywords: []string{"amarelo", "amarela", "yellow"}},
	{Name: "mostarda", Hex: "#FFDB58", Keywords: []string{"mostarda", "mustard"}},
	{Name: "mostarda escura", Hex: "#7F6A00", Keywords: []string{"mostarda escura", "mostarda escuro", "dark mustard"}},
	{Name: "ouro", Hex: "#FFD700", Keywords: []string{"ouro", "dourado", "dourada", "gold", "golden"}},
	{Name: "açafrão", Hex: "#F4C430", Keywords: []string{"açafrão", "saffron"}},

	// greens
	{Name: "verde", Hex: "#008000", Keywords: []string{"verde", "green"}},
	{Name: "verde água", Hex: "#00FA9A", Keywords: []string{"verde água", "verde agua", "aqua green"}},
	{Name: "verde limão", Hex: "#32CD32", Keywords: []string{"verde limão", "lima", "lime"}},
	{Name: "verde oliva", Hex: "#808000", Keywords: []string{"verde oliva", "oliva", "olive"}},
	{Name: "verde musgo", Hex: "#8A9A5B", Keywords: []string{"verde musgo", "musgo", "moss green"}},
	{Name: "verde bandeira", Hex: "#009739", Keywords: []string{"verde bandeira", "flag green"}},
	{Name: "verde militar", Hex: "#4B5320", Keywords: []string{"verde militar", "army green", "militar"}},
	{Name: "menta", Hex: "#98FF98", Keywords: []string{"menta", "mint"}},

	// blues and cyans
	{Name: "azul", Hex: "#0000FF", Keywords: []string{"azul", "blue"}},
	{Name: "azul marinho", Hex: "#000080", Keywords: []string{"azul marinho", "marinho", "navy", "navy blue"}},
	{Name: "azul royal", Hex: "#4169E1", Keywords: []string{"azul royal", "royal blue", "azul rei"}},
	{Name: "azul bebê", Hex: "#89CFF0", Keywords: []string{"azul bebê", "baby blue"}},
	{Name: "azul petróleo", Hex: "#0E4D64", Keywords: []string{"azul petróleo", "petróleo", "petrol blue"}},
	{Name: "azul celeste", Hex: "#87CEEB", Keywords: []string{"azul celeste", "celeste", "sky blue", "azul céu"}},
	{Name: "jeans", Hex: "#1560BD", Keywords: []string{"jeans", "denim", "azul jeans"}},
	{Name: "turquesa", Hex: "#40E0D0", Keywords: []string{"turquesa", "turquoise", "tiffany"}},
	{Name: "ciano", Hex: "#00FFFF", Keywords: []string{"ciano", "cyan", "aqua"}},
	{Name: "água-marinha", Hex: "#7FFFD4", Keywords: []string{"água-marinha", "aquamarine"}},

	// purples
	{Name: "roxo", Hex: "#800080", Keywords: []string{"roxo", "roxa", "purple", "púrpura"}},
	{Name: "violeta", Hex: "#8F00FF", Keywords: []string{"violeta", "violet"}},
	{Name: "lilás", Hex: "#C8A2C8", Keywords: []string{"lilás", "lilac"}},
	{Name: "lavanda", Hex: "#E6E6FA", Keywords: []string{"lavanda", "lavender"}},
	{Name: "berinjela", Hex: "#614051", Keywords: []string{"berinjela", "eggplant", "aubergine"}},

	// browns and metals
	{Name: "marrom", Hex: "#8B4513", Keywords: []string{"marrom", "brown", "castanho"}},
	{Name: "chocolate", Hex: "#7B3F00", Keywords: []string{"chocolate"}},
	{Name: "café", Hex: "#6F4E37", Keywords: []string{"café", "coffee"}},
	{Name: "caramelo", Hex: "#C68E17", Keywords: []string{"caramelo", "caramel"}},
	{Name: "bege", Hex: "#F5F5DC", Keywords: []string{"bege", "beige"}},
	{Name: "nude", Hex: "#E3BC9A", Keywords: []string{"nude", "cor de pele"}},
	{Name: "areia", Hex: "#C2B280", Keywords: []string{"areia", "sand"}},
	{Name: "caqui", Hex: "#C3B091", Keywords: []string{"caqui", "khaki"}},
	{Name: "ferrugem", Hex: "#B7410E", Keywords: []string{"ferrugem", "rust"}},
	{Name: "prata", Hex: "#C0C0C0", Keywords: []string{"prata", "prateado", "prateada", "silver"}},
	{Name: "bronze", Hex: "#CD7F32", Keywords: []string{"bronze"}},
	{Name: "cobre", Hex: "#B87333", Keywords: []string{"cobre", "copper", "acobreado"}},
}

// Builtin returns a copy of the built-in dictionary.
func Builtin() []ColorEntry {
	out := make([]ColorEntry, len(builtinEntries))
	for i, e := range builtinEntries {
		out[i] = ColorEntry{Name: e.Name, Hex: e.Hex, Keywords: append([]string(nil), e.Keywords...)}
	}
	return out
}
