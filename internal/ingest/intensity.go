package ingest

import (
	"log"
	"path/filepath"
	"unicode/utf8"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// IntensityColumns maps field names to column indexes. -1 marks a column the
// source workbook does not carry; its field stays nil in every record.
type IntensityColumns struct {
	Zona, SubZona, Jenis             int
	KDB, KLB, KDH, KTB               int
	GSBArteri, GSBKolektor, GSBLokal int
	JBS, JBB, Tinggi, Luas           int
	Tampilan, Keterangan             int
}

// IntensityConfig parameterizes extraction of the building-intensity table.
type IntensityConfig struct {
	Path        string
	Sheet       string
	Header      HeaderConfig
	HeaderDepth int
	Columns     IntensityColumns
	MinNameLen  int
}

// DefaultIntensityConfig is the layout of the Trikora intensity workbook.
func DefaultIntensityConfig(dataDir string) IntensityConfig {
	return IntensityConfig{
		Path:        filepath.Join(dataDir, "raw", "intensitas.xlsx"),
		Header:      HeaderConfig{Keywords: []string{"zona", "kdb"}, FallbackRow: 2},
		HeaderDepth: 2,
		Columns: IntensityColumns{
			Zona: 0, SubZona: 1, Jenis: 2,
			KDB: 3, KLB: 4, KDH: 5, KTB: 6,
			GSBArteri: 7, GSBKolektor: 8, GSBLokal: 9,
			JBS: 10, JBB: 11, Tinggi: 12, Luas: 13,
			Tampilan: 14, Keterangan: 15,
		},
		MinNameLen: 3,
	}
}

// ExtractIntensity turns the intensity grid into records. The Zona column is
// merged across row groups in the source, so its last non-empty value is
// carried forward until the next one appears.
func ExtractIntensity(rows [][]string, cfg IntensityConfig) ([]models.IntensityRecord, HeaderLocation) {
	loc := LocateHeader(rows, cfg.Header)
	if loc.Fallback {
		log.Printf("warning: intensity: header keywords %v not found, using fallback row %d",
			cfg.Header.Keywords, loc.Row)
	}

	minLen := cfg.MinNameLen
	if minLen <= 0 {
		minLen = 3
	}
	col := cfg.Columns

	var records []models.IntensityRecord
	zonaContext := ""
	for i := loc.Row + cfg.HeaderDepth; i < len(rows); i++ {
		row := rows[i]
		if rowBlank(row) {
			continue
		}
		if zona := cellString(rows, i, col.Zona); zona != "" {
			zonaContext = zona
		}
		subZona := cellString(rows, i, col.SubZona)
		if subZona == "" && zonaContext == "" {
			continue
		}
		if subZona != "" && utf8.RuneCountInString(subZona) < minLen {
			continue
		}
		if isHeaderRepeat(subZona) || isHeaderRepeat(zonaContext) {
			continue
		}

		rec := models.IntensityRecord{
			Zona:            zonaContext,
			SubZona:         subZona,
			Jenis:           stringCol(rows, i, col.Jenis),
			KDBMaks:         coerceCol(rows, i, col.KDB),
			KLBMaks:         coerceCol(rows, i, col.KLB),
			KDHMin:          coerceCol(rows, i, col.KDH),
			KTBMaks:         coerceCol(rows, i, col.KTB),
			GSBArteri:       coerceCol(rows, i, col.GSBArteri),
			GSBKolektor:     coerceCol(rows, i, col.GSBKolektor),
			GSBLokal:        coerceCol(rows, i, col.GSBLokal),
			JBSMin:          coerceCol(rows, i, col.JBS),
			JBBMin:          coerceCol(rows, i, col.JBB),
			TinggiMaks:      coerceCol(rows, i, col.Tinggi),
			LuasKavelingMin: coerceCol(rows, i, col.Luas),
			Tampilan:        stringCol(rows, i, col.Tampilan),
			Keterangan:      stringCol(rows, i, col.Keterangan),
		}
		records = append(records, rec)
	}
	return records, loc
}

func coerceCol(rows [][]string, row, col int) any {
	if col < 0 {
		return nil
	}
	return CoerceCell(cellString(rows, row, col))
}

func stringCol(rows [][]string, row, col int) string {
	if col < 0 {
		return ""
	}
	v := cellString(rows, row, col)
	if v == "-" {
		return ""
	}
	return v
}
