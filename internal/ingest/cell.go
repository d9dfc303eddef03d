package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// commaDecimal matches numerals written with an Indonesian decimal comma.
var commaDecimal = regexp.MustCompile(`^-?\d+,\d+$`)

// CoerceCell converts a raw spreadsheet cell into a typed value: nil for
// blank or "-", float64 when the whole value parses as a decimal numeral,
// otherwise the trimmed string unchanged. Coercion never fails; anything
// unrecognized degrades to string passthrough.
func CoerceCell(raw string) any {
	v := strings.TrimSpace(raw)
	if v == "" || v == "-" {
		return nil
	}
	n := v
	if commaDecimal.MatchString(n) {
		n = strings.ReplaceAll(n, ",", ".")
	}
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		return f
	}
	return v
}

// cellString returns the trimmed cell at (row, col), tolerating short rows.
func cellString(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

// rowBlank reports whether a row has no non-empty cell.
func rowBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
