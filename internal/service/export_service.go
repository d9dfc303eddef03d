package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jengzang/rdtr-backend-go/internal/export"
	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// ExportService renders filtered activity lists as downloadable payloads.
type ExportService struct {
	zoning *ZoningService
}

// NewExportService creates a new export service
func NewExportService(zoning *ZoningService) *ExportService {
	return &ExportService{zoning: zoning}
}

// buildRows runs the filter and shapes the result into export rows,
// numbering them in filtered order.
func (s *ExportService) buildRows(filter models.ActivityFilter) ([]export.Row, error) {
	// Exports always cover the full filtered list, never one page.
	filter.Page = 0
	filter.PageSize = 0

	activities, _, err := s.zoning.GetActivities(filter)
	if err != nil {
		return nil, err
	}
	descriptions := models.RegulationDescriptions()

	rows := make([]export.Row, len(activities))
	for i, act := range activities {
		rows[i] = export.Row{
			No:         strconv.Itoa(i + 1),
			Kegiatan:   act.Activity,
			Kode:       permissionFor(act, filter.Zone),
			Keterangan: describe(permissionFor(act, filter.Zone), descriptions),
		}
	}
	return rows, nil
}

// permissionFor picks the permission string shown for an activity: the
// selected zone's entry, or a zone-qualified list when no zone is selected.
// The list is ordered by zone name so repeated exports are byte-identical.
func permissionFor(act models.Activity, zone string) string {
	if zone != "" {
		if perm, ok := act.Zones[zone]; ok {
			return perm
		}
		return "-"
	}
	zones := make([]string, 0, len(act.Zones))
	for z := range act.Zones {
		zones = append(zones, z)
	}
	if len(zones) == 0 {
		return "-"
	}
	sort.Strings(zones)
	parts := make([]string, len(zones))
	for i, z := range zones {
		parts[i] = fmt.Sprintf("%s: %s", z, act.Zones[z])
	}
	return strings.Join(parts, "; ")
}

// describe joins the descriptions of each code in a combination.
func describe(perm string, descriptions map[models.RegulationCode]string) string {
	if perm == "-" || strings.Contains(perm, ":") {
		return ""
	}
	var parts []string
	for _, tok := range models.SplitPermission(perm) {
		if desc, ok := descriptions[models.RegulationCode(tok)]; ok {
			parts = append(parts, desc)
		}
	}
	return strings.Join(parts, "; ")
}

// ExportCSV renders the filtered list as CSV.
func (s *ExportService) ExportCSV(filter models.ActivityFilter) ([]byte, error) {
	rows, err := s.buildRows(filter)
	if err != nil {
		return nil, err
	}
	return export.WriteCSV(rows)
}

// ExportXLS renders the filtered list as tab-delimited Excel text.
func (s *ExportService) ExportXLS(filter models.ActivityFilter) ([]byte, error) {
	rows, err := s.buildRows(filter)
	if err != nil {
		return nil, err
	}
	return export.WriteTabDelimited(rows)
}

// ExportText renders the filtered list as the clipboard text block.
func (s *ExportService) ExportText(filter models.ActivityFilter) ([]byte, error) {
	rows, err := s.buildRows(filter)
	if err != nil {
		return nil, err
	}
	return export.WriteText(rows, filter.Zone), nil
}

// containsFold is a case-insensitive substring check shared by the in-memory
// filter paths.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
