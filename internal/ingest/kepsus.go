package ingest

import (
	"log"
	"path/filepath"
	"unicode/utf8"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// KepsusColumns maps special-provision fields to column indexes.
type KepsusColumns struct {
	Kawasan, KodeSWP, KodeBlok int
	SubZona, Luas, Ketentuan   int
}

// KepsusConfig parameterizes extraction of the "ketentuan khusus" workbook.
// Tabel names the source table for the metadata block (one sheet per table).
type KepsusConfig struct {
	Path        string
	Sheet       string
	Tabel       string
	Header      HeaderConfig
	HeaderDepth int
	Columns     KepsusColumns
}

// DefaultKepsusConfig is the layout of the special-provisions workbook.
func DefaultKepsusConfig(dataDir string) KepsusConfig {
	return KepsusConfig{
		Path:        filepath.Join(dataDir, "raw", "kepsus.xlsx"),
		Tabel:       "Ketentuan Khusus",
		Header:      HeaderConfig{Keywords: []string{"kawasan", "ketentuan"}, FallbackRow: 1},
		HeaderDepth: 1,
		Columns: KepsusColumns{
			Kawasan: 0, KodeSWP: 1, KodeBlok: 2,
			SubZona: 3, Luas: 4, Ketentuan: 5,
		},
	}
}

// ExtractKepsus emits one record per (kawasan x sub-zone) row. The kawasan
// and code columns are merged across row groups and carried forward; the
// multi-line Ketentuan text is preserved as-is and re-split for display only.
func ExtractKepsus(rows [][]string, cfg KepsusConfig) ([]models.KepsusActivity, HeaderLocation) {
	loc := LocateHeader(rows, cfg.Header)
	if loc.Fallback {
		log.Printf("warning: kepsus: header keywords %v not found, using fallback row %d",
			cfg.Header.Keywords, loc.Row)
	}

	col := cfg.Columns
	kawasan, kodeSWP, kodeBlok := "", "", ""
	var records []models.KepsusActivity
	for i := loc.Row + cfg.HeaderDepth; i < len(rows); i++ {
		if rowBlank(rows[i]) {
			continue
		}
		if v := cellString(rows, i, col.Kawasan); v != "" {
			kawasan = v
		}
		if v := cellString(rows, i, col.KodeSWP); v != "" {
			kodeSWP = v
		}
		if v := cellString(rows, i, col.KodeBlok); v != "" {
			kodeBlok = v
		}
		subZona := cellString(rows, i, col.SubZona)
		if utf8.RuneCountInString(subZona) < 3 || isHeaderRepeat(subZona) {
			continue
		}
		records = append(records, models.KepsusActivity{
			Activity: subZona,
			Zones: models.KepsusZones{
				Luas:      cellString(rows, i, col.Luas),
				Ketentuan: cellString(rows, i, col.Ketentuan),
			},
			Metadata: models.KepsusMetadata{
				Tabel:       cfg.Tabel,
				KawasanType: kawasan,
				KodeSWP:     kodeSWP,
				KodeBlok:    kodeBlok,
			},
		})
	}
	return records, loc
}
