package zonematch

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Perumahan Kepadatan Tinggi", "perumahan kepadatan tinggi"},
		{"zona prefix", "Zona Perumahan", "perumahan"},
		{"trailing parenthetical", "Ruang Terbuka Hijau (RTH)", "ruang terbuka hijau"},
		{"whitespace collapse", "  Badan   Air ", "badan air"},
		{"interior parentheses kept", "Kawasan (Khusus) Industri", "kawasan (khusus) industri"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	names := []string{
		"Zona Perumahan Kepadatan Tinggi",
		"Ruang Terbuka Hijau (RTH)",
		"Sempadan  Pantai",
		"Perdagangan dan Jasa Skala Kota",
	}
	for _, name := range names {
		once := Normalize(name)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", name, once, twice)
		}
	}
}

func TestNormalizeLoose(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Perumahan Kepadatan Tinggi", "perumahankepadatantinggi"},
		{"Sempadan Pantai (SP)", "sempadanpantai"},
		{"Perdagangan dan Jasa - Skala Kota", "perdagangandanjasaskalakota"},
	}
	for _, tt := range tests {
		if got := NormalizeLoose(tt.in); got != tt.want {
			t.Errorf("NormalizeLoose(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveAlias(t *testing.T) {
	// The RDTR workbook writes this name with different casing than the
	// intensity workbook; both spellings resolve to the canonical one.
	got := ResolveAlias("Hutan Produksi yang Dapat di Konversi")
	if got != "Hutan Produksi yang dapat Dikonversi" {
		t.Errorf("ResolveAlias = %q", got)
	}
	if got := ResolveAlias("Perumahan"); got != "Perumahan" {
		t.Errorf("unknown name should pass through, got %q", got)
	}
}
