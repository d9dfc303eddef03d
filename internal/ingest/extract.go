package ingest

import (
	"log"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// SourceConfig parameterizes the permitted-use extraction for one workbook.
// The two sources share one pipeline; only the offsets and keywords differ.
type SourceConfig struct {
	Name        string // models.SourceTrikora or models.SourceBSB
	Path        string
	Sheet       string // empty means the first sheet
	Header      HeaderConfig
	HeaderDepth int // stacked header rows holding zone / sub-zone names
	ActivityCol int
	ZoneStart   int // first zone column
	MinNameLen  int // activity names shorter than this are skipped
}

// TrikoraConfig is the layout of the Trikora permitted-use workbook.
func TrikoraConfig(dataDir string) SourceConfig {
	return SourceConfig{
		Name:        models.SourceTrikora,
		Path:        filepath.Join(dataDir, "raw", "rdtr-trikora.xlsx"),
		Header:      HeaderConfig{Keywords: []string{"kegiatan", "zona"}, FallbackRow: 2},
		HeaderDepth: 2,
		ActivityCol: 1,
		ZoneStart:   2,
		MinNameLen:  3,
	}
}

// BSBConfig is the layout of the BSB permitted-use workbook: same semantics,
// different header offsets and a deeper stacked header.
func BSBConfig(dataDir string) SourceConfig {
	return SourceConfig{
		Name:        models.SourceBSB,
		Path:        filepath.Join(dataDir, "raw", "bsb.xlsx"),
		Header:      HeaderConfig{Keywords: []string{"kegiatan", "zona"}, FallbackRow: 3},
		HeaderDepth: 3,
		ActivityCol: 1,
		ZoneStart:   2,
		MinNameLen:  3,
	}
}

// ExtractActivities turns a permitted-use grid into Activity records.
// Rows that are blank, too short, or repeats of the header are skipped with
// a warning; disallowed (X) cells are dropped so they never reach the output.
func ExtractActivities(rows [][]string, cfg SourceConfig) ([]models.Activity, HeaderLocation) {
	loc := LocateHeader(rows, cfg.Header)
	if loc.Fallback {
		log.Printf("warning: %s: header keywords %v not found in first rows, using fallback row %d",
			cfg.Name, cfg.Header.Keywords, loc.Row)
	}

	headers := BuildColumnHeaders(rows, loc.Row, cfg.HeaderDepth)
	minLen := cfg.MinNameLen
	if minLen <= 0 {
		minLen = 3
	}

	var activities []models.Activity
	for i := loc.Row + cfg.HeaderDepth; i < len(rows); i++ {
		row := rows[i]
		if rowBlank(row) {
			continue
		}
		name := cellString(rows, i, cfg.ActivityCol)
		if utf8.RuneCountInString(name) < minLen {
			continue
		}
		if isHeaderRepeat(name) {
			continue
		}

		zones := make(map[string]string)
		for col := cfg.ZoneStart; col < len(headers); col++ {
			zone := strings.TrimSpace(headers[col])
			if zone == "" {
				continue
			}
			perm := cellString(rows, i, col)
			if perm == "" || perm == "-" || perm == string(models.CodeX) {
				continue
			}
			if err := models.ValidatePermission(perm); err != nil {
				// An X combined with other codes is treated as
				// disallowed; anything else unparseable is dropped too.
				log.Printf("warning: %s row %d: %v, cell dropped", cfg.Name, i+1, err)
				continue
			}
			zones[zone] = models.CanonicalPermission(perm)
		}
		activities = append(activities, models.Activity{Activity: name, Zones: zones})
	}
	return activities, loc
}

// isHeaderRepeat recognizes rows that restate the table header mid-sheet,
// a habit of the source workbooks at page boundaries.
func isHeaderRepeat(name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "nama") && strings.Contains(lower, "zona") {
		return true
	}
	return lower == "kegiatan" || lower == "jenis kegiatan"
}
