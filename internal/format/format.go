package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// LetterLabel returns the lettered bullet for index i: "a.", "b.", ...
// The source tables never exceed a handful of variants, but wrap past "z."
// into "aa." just in case.
func LetterLabel(i int) string {
	label := ""
	for {
		label = string(rune('a'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return label + "."
}

// FormatClauses applies the clause punctuation shared by the intensity and
// special-provisions text: every item ends ";", the second-to-last "; dan",
// the last ".". A single item just ends ".".
func FormatClauses(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		item = strings.TrimRight(strings.TrimSpace(item), ".;")
		switch {
		case i == len(items)-1:
			out[i] = item + "."
		case i == len(items)-2:
			out[i] = item + "; dan"
		default:
			out[i] = item + ";"
		}
	}
	return out
}

// FormatLetteredClauses letters the items and applies the clause punctuation:
// "a. ...;", "b. ...; dan", "c. ...." for a three-item list.
func FormatLetteredClauses(items []string) []string {
	clauses := FormatClauses(items)
	for i := range clauses {
		clauses[i] = LetterLabel(i) + " " + clauses[i]
	}
	return clauses
}

// roadSplit recognizes the east/west-of-road Jenis variants that get fixed
// labels instead of lettered enumeration.
var roadSplit = regexp.MustCompile(`(?i)persil\s+disebelah\s+(barat|timur)`)

// FormatIntensityText renders the intensity records of one zone as the
// labeled text block shown in the browser and copied to the clipboard.
// Multiple Jenis variants become lettered sub-entries, except road-split
// variants which keep their own labels.
func FormatIntensityText(records []models.IntensityRecord, zone string) string {
	if len(records) == 0 {
		return "-"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ketentuan Intensitas Pemanfaatan Ruang %s:\n", zone)

	if len(records) == 1 {
		writeClauses(&b, fieldItems(records[0]), "")
		return b.String()
	}

	allRoadSplit := true
	for _, rec := range records {
		if !roadSplit.MatchString(rec.Jenis) {
			allRoadSplit = false
			break
		}
	}

	for i, rec := range records {
		label := LetterLabel(i) + " "
		title := rec.Jenis
		if allRoadSplit {
			label = ""
			title = roadSplitLabel(rec.Jenis)
		} else if title == "" {
			title = fmt.Sprintf("Ketentuan %d", i+1)
		}
		fmt.Fprintf(&b, "%s%s\n", label, title)
		writeClauses(&b, fieldItems(rec), "   ")
	}
	return b.String()
}

// roadSplitLabel maps an east/west road-split variant to its fixed label.
func roadSplitLabel(jenis string) string {
	m := roadSplit.FindStringSubmatch(jenis)
	if m == nil {
		return jenis
	}
	if strings.EqualFold(m[1], "barat") {
		return "Sebelah Barat"
	}
	return "Sebelah Timur"
}

func writeClauses(b *strings.Builder, items []string, indent string) {
	for _, line := range FormatClauses(items) {
		fmt.Fprintf(b, "%s%s\n", indent, line)
	}
}

// fieldItems collects the labeled non-empty fields of one record in table
// order. Blank fields are omitted; a fully blank record degrades to a dash.
func fieldItems(rec models.IntensityRecord) []string {
	var items []string
	add := func(label string, v any, unit string) {
		s := formatValue(v)
		if s == "" {
			return
		}
		items = append(items, label+" "+s+unit)
	}

	add("KDB Maksimum", rec.KDBMaks, "%")
	add("KLB Maksimum", rec.KLBMaks, "")
	add("KDH Minimum", rec.KDHMin, "%")
	add("KTB Maksimum", rec.KTBMaks, "%")
	add("GSB Minimum Jalan Arteri", rec.GSBArteri, " m")
	add("GSB Minimum Jalan Kolektor", rec.GSBKolektor, " m")
	add("GSB Minimum Jalan Lokal", rec.GSBLokal, " m")
	add("JBS Minimum", rec.JBSMin, " m")
	add("JBB Minimum", rec.JBBMin, " m")
	add("Tinggi Bangunan Maksimum", rec.TinggiMaks, " m")
	add("Luas Kaveling Minimum", rec.LuasKavelingMin, " m2")
	if rec.Tampilan != "" {
		items = append(items, "Tampilan Bangunan: "+rec.Tampilan)
	}
	if rec.Keterangan != "" {
		items = append(items, "Keterangan: "+rec.Keterangan)
	}
	if len(items) == 0 {
		items = append(items, "-")
	}
	return items
}

// formatValue renders a coerced cell value; integers drop the trailing ".0".
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// clauseMarker strips a leading "a." style letter from a provision line.
var clauseMarker = regexp.MustCompile(`^[a-z]\.\s*`)

// SplitKetentuan re-splits a multi-line provision text into its clauses for
// display. Existing letter markers are dropped; the display layer re-letters.
func SplitKetentuan(text string) []string {
	var clauses []string
	for _, line := range strings.Split(text, "\n") {
		for _, part := range strings.Split(line, ";") {
			part = strings.TrimSpace(part)
			part = clauseMarker.ReplaceAllString(part, "")
			part = strings.TrimSpace(strings.TrimSuffix(part, "dan"))
			part = strings.TrimRight(part, ".;")
			if part != "" {
				clauses = append(clauses, part)
			}
		}
	}
	return clauses
}
