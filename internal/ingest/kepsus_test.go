package ingest

import "testing"

func testKepsusConfig() KepsusConfig {
	cfg := DefaultKepsusConfig(".")
	cfg.Header.FallbackRow = 0
	return cfg
}

func kepsusGrid() [][]string {
	return [][]string{
		{"Kawasan", "Kode SWP", "Kode Blok", "Sub Zona", "Luas (Ha)", "Ketentuan"},
		{"Rawan Banjir", "A", "A.1", "Perumahan Kepadatan Tinggi", "12,5", "a. dilarang basement;\nb. wajib kajian banjir."},
		{"", "", "A.2", "Perdagangan dan Jasa", "3,2", "menyediakan jalur evakuasi"},
		{"Sempadan Sungai", "B", "B.1", "RTH", "", ""},
		{"", "", "", "ab", "1", "terlalu pendek"},
	}
}

func TestExtractKepsus(t *testing.T) {
	records, loc := ExtractKepsus(kepsusGrid(), testKepsusConfig())
	if loc.Fallback || loc.Row != 0 {
		t.Fatalf("header location = %+v", loc)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3: %+v", len(records), records)
	}

	first := records[0]
	if first.Activity != "Perumahan Kepadatan Tinggi" {
		t.Errorf("first activity = %q", first.Activity)
	}
	if first.Zones.Luas != "12,5" {
		t.Errorf("luas = %q", first.Zones.Luas)
	}
	if first.Metadata.KawasanType != "Rawan Banjir" || first.Metadata.KodeSWP != "A" || first.Metadata.KodeBlok != "A.1" {
		t.Errorf("metadata = %+v", first.Metadata)
	}
	if first.Metadata.Tabel != "Ketentuan Khusus" {
		t.Errorf("tabel = %q", first.Metadata.Tabel)
	}
}

func TestExtractKepsusCarriesMetadataForward(t *testing.T) {
	records, _ := ExtractKepsus(kepsusGrid(), testKepsusConfig())

	// Merged kawasan and code cells inherit the previous group's values;
	// a new blok code overrides only itself.
	second := records[1]
	if second.Metadata.KawasanType != "Rawan Banjir" || second.Metadata.KodeSWP != "A" {
		t.Errorf("second metadata = %+v", second.Metadata)
	}
	if second.Metadata.KodeBlok != "A.2" {
		t.Errorf("second kode blok = %q", second.Metadata.KodeBlok)
	}

	third := records[2]
	if third.Metadata.KawasanType != "Sempadan Sungai" || third.Metadata.KodeSWP != "B" || third.Metadata.KodeBlok != "B.1" {
		t.Errorf("third metadata = %+v", third.Metadata)
	}
}

func TestExtractKepsusSkipsShortNames(t *testing.T) {
	records, _ := ExtractKepsus(kepsusGrid(), testKepsusConfig())
	for _, rec := range records {
		if rec.Activity == "ab" {
			t.Error("two-rune sub-zone name should be skipped")
		}
	}
}
