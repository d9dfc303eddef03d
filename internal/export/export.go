// Package export renders filtered activity lists in the three formats the
// browser offers: plain text for the clipboard, CSV, and a tab-delimited
// file served under an .xls name. The .xls output is not a real workbook --
// Excel opens tab-separated text with that extension and MIME type, which is
// all the original ever produced.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Row is one exported activity line.
type Row struct {
	No         string // zero-padded ordinal in filtered order
	Kegiatan   string // activity name
	Kode       string // permission combination, e.g. "T1,B2"
	Keterangan string // joined regulation descriptions
}

// CSVHeader is the fixed header row of the CSV export.
var CSVHeader = []string{"No", "Kegiatan", "Kode Regulasi", "Keterangan"}

// WriteCSV renders rows as comma-delimited CSV with every field quoted,
// preserving filtered order.
func WriteCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	// encoding/csv only quotes when needed; the original always quotes,
	// so fields are pre-escaped and written directly.
	writeQuoted := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteString("\r\n")
	}

	writeQuoted(CSVHeader)
	for _, row := range rows {
		writeQuoted([]string{row.No, row.Kegiatan, row.Kode, row.Keterangan})
	}
	return buf.Bytes(), nil
}

// WriteTabDelimited renders rows as tab-separated text for the .xls export.
func WriteTabDelimited(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.No, row.Kegiatan, row.Kode, row.Keterangan}); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteText renders rows as the clipboard-shaped plain text block.
func WriteText(rows []Row, zone string) []byte {
	var buf bytes.Buffer
	if zone != "" {
		fmt.Fprintf(&buf, "Daftar Kegiatan %s\n\n", zone)
	}
	for _, row := range rows {
		fmt.Fprintf(&buf, "%s. %s (%s)\n", row.No, row.Kegiatan, row.Kode)
		if row.Keterangan != "" {
			fmt.Fprintf(&buf, "   %s\n", row.Keterangan)
		}
	}
	return buf.Bytes()
}
