package zonematch

// zoneAliases maps loose-normalized RDTR spellings to the Trikora spelling
// used by the intensity workbook. The tables were produced by different
// agencies and a handful of zone names drifted between them.
var zoneAliases = map[string]string{
	// "Hutan Produksi yang Dapat di Konversi" (RDTR) vs Trikora casing
	"hutanproduksiyangdapatdikonversi": "Hutan Produksi yang dapat Dikonversi",
	"ruangterbukahijau":                "Ruang Terbuka Hijau (RTH)",
	"sempadanpantai":                   "Sempadan Pantai (SP)",
	"pembangkitantenagalistrik":        "Pembangkitan Tenaga Listrik (PTL)",
}

// ResolveAlias returns the canonical spelling for a zone name when the alias
// table knows it, otherwise the input unchanged.
func ResolveAlias(name string) string {
	if canonical, ok := zoneAliases[NormalizeLoose(name)]; ok {
		return canonical
	}
	return name
}
