package ingest

import "strings"

// HeaderConfig drives the keyword scan for a sheet's header row.
type HeaderConfig struct {
	Keywords    []string // case-insensitive substrings that must all appear in one row
	ScanDepth   int      // rows to scan from the top; 0 means defaultScanDepth
	FallbackRow int      // row index used when no row matches
}

const defaultScanDepth = 15

// HeaderLocation is the result of a header scan. Fallback is true when the
// keyword scan missed and FallbackRow was used; callers log it and the
// preview summary surfaces it, so a shifted workbook layout is visible
// instead of silently ingesting garbage.
type HeaderLocation struct {
	Row      int
	Fallback bool
}

// LocateHeader scans the first ScanDepth rows for the first row containing
// every configured keyword, case-insensitively, across any of its cells.
func LocateHeader(rows [][]string, cfg HeaderConfig) HeaderLocation {
	depth := cfg.ScanDepth
	if depth <= 0 {
		depth = defaultScanDepth
	}
	if depth > len(rows) {
		depth = len(rows)
	}
	for i := 0; i < depth; i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		found := true
		for _, kw := range cfg.Keywords {
			if !strings.Contains(joined, strings.ToLower(kw)) {
				found = false
				break
			}
		}
		if found && len(cfg.Keywords) > 0 {
			return HeaderLocation{Row: i}
		}
	}
	return HeaderLocation{Row: cfg.FallbackRow, Fallback: true}
}

// maxHeaderDepth bounds the stacked-header scan: zone and sub-zone names are
// split across at most this many rows in the source workbooks.
const maxHeaderDepth = 4

// BuildColumnHeaders flattens a multi-row Excel header into one name per
// column by concatenating the non-empty fragments of up to depth rows,
// starting at headerRow. A column whose fragments are all empty gets "".
func BuildColumnHeaders(rows [][]string, headerRow, depth int) []string {
	if depth <= 0 || depth > maxHeaderDepth {
		depth = maxHeaderDepth
	}
	width := 0
	for i := headerRow; i < headerRow+depth && i < len(rows); i++ {
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	headers := make([]string, width)
	for col := 0; col < width; col++ {
		var parts []string
		for i := headerRow; i < headerRow+depth && i < len(rows); i++ {
			if v := cellString(rows, i, col); v != "" {
				parts = append(parts, v)
			}
		}
		headers[col] = strings.Join(parts, " ")
	}
	return headers
}
