package ingest

import (
	"sort"

	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/zonematch"
)

// MergeIntensity joins the permitted-use dataset with the intensity dataset
// on normalized zone names. Every zone key present in either source appears
// in the output: a permission zone without intensity data keeps an empty
// record list, and an intensity group no permission zone resolves to is
// appended with a zero activity count. Many permission aliases may resolve to
// one intensity group; a group is never split across outputs.
func MergeIntensity(zoning *models.ZoningDataset, records []models.IntensityRecord) []models.MergedZone {
	ix := zonematch.NewIndex(records)

	activityCount := make(map[string]int)
	for _, act := range zoning.Activities {
		for zone := range act.Zones {
			activityCount[zone]++
		}
	}

	matched := make(map[*zonematch.Group]bool)
	merged := make([]models.MergedZone, 0, len(zoning.Zones))
	for _, zone := range zoning.Zones {
		mz := models.MergedZone{
			Zone:          zone,
			Intensity:     []models.IntensityRecord{},
			ActivityCount: activityCount[zone],
		}
		if g := ix.Find(zone, zone); g != nil {
			mz.Matched = true
			mz.Intensity = g.Records
			matched[g] = true
		}
		merged = append(merged, mz)
	}

	// Intensity groups nothing resolved to still carry regulation data the
	// browser can show; they are kept rather than dropped.
	var leftovers []models.MergedZone
	for _, g := range ix.Groups() {
		if matched[g] {
			continue
		}
		name := g.SubZona
		if name == "" {
			name = g.Zona
		}
		leftovers = append(leftovers, models.MergedZone{
			Zone:      name,
			Matched:   true,
			Intensity: g.Records,
		})
	}
	sort.Slice(leftovers, func(i, j int) bool { return leftovers[i].Zone < leftovers[j].Zone })
	return append(merged, leftovers...)
}
