package ingest

import (
	"fmt"
	"sort"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

// AssembleZoning builds the persisted dataset shape from extracted
// activities: the unique zone list derived from the activity maps, the fixed
// regulation table, and the cosmetic zero-padded activity numbers.
func AssembleZoning(activities []models.Activity) *models.ZoningDataset {
	seen := make(map[string]bool)
	var zones []string
	for _, act := range activities {
		for zone := range act.Zones {
			if !seen[zone] {
				seen[zone] = true
				zones = append(zones, zone)
			}
		}
	}
	sort.Strings(zones)

	numbered := make([]models.Activity, len(activities))
	for i, act := range activities {
		act.ActivityNumber = fmt.Sprintf("%03d", i+1)
		numbered[i] = act
	}

	return &models.ZoningDataset{
		Activities:  numbered,
		Zones:       zones,
		Regulations: models.RegulationDescriptions(),
	}
}

// AssembleIntensity builds the intensity dataset with its derived indexes.
// groupedByZona and the filter lists are regenerated from data on every call,
// never hand-maintained, so they cannot drift from the records.
func AssembleIntensity(records []models.IntensityRecord) *models.IntensityDataset {
	grouped := make(map[string][]models.IntensityRecord)
	zonaSeen := make(map[string]bool)
	subZonaSeen := make(map[string]bool)
	jenisSeen := make(map[string]bool)

	for _, rec := range records {
		grouped[rec.Zona] = append(grouped[rec.Zona], rec)
		if rec.Zona != "" {
			zonaSeen[rec.Zona] = true
		}
		if rec.SubZona != "" {
			subZonaSeen[rec.SubZona] = true
		}
		if rec.Jenis != "" {
			jenisSeen[rec.Jenis] = true
		}
	}

	return &models.IntensityDataset{
		Data: records,
		Summary: models.IntensitySummary{
			TotalRecords: len(records),
			TotalZona:    len(zonaSeen),
			TotalSubZona: len(subZonaSeen),
		},
		GroupedByZona: grouped,
		Filters: models.IntensityFilterLists{
			ZonaList:        sortedKeys(zonaSeen),
			SubZonaList:     sortedKeys(subZonaSeen),
			JenisKhususList: sortedKeys(jenisSeen),
		},
		Headers: models.IntensityHeaders(),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
