package service

import (
	"reflect"
	"testing"

	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/models"
)

func testLoader(t *testing.T) *dataset.Loader {
	t.Helper()
	store := dataset.NewStore(t.TempDir())

	zoning := &models.ZoningDataset{
		Activities: []models.Activity{
			{Activity: "Penangkapan ikan hias laut", ActivityNumber: "001", Zones: map[string]string{
				"Badan Air": "T1,B2",
			}},
			{Activity: "Rumah tinggal", ActivityNumber: "002", Zones: map[string]string{
				"Perumahan Kepadatan Tinggi": "I",
				"Badan Air":                  "B1",
			}},
			{Activity: "Industri pengolahan ikan", ActivityNumber: "003", Zones: map[string]string{
				"Kawasan Peruntukan Industri": "T1, B2",
			}},
		},
		Zones:       []string{"Badan Air", "Kawasan Peruntukan Industri", "Perumahan Kepadatan Tinggi"},
		Regulations: models.RegulationDescriptions(),
	}
	if err := store.WriteZoning(models.SourceTrikora, zoning); err != nil {
		t.Fatalf("WriteZoning: %v", err)
	}

	intensity := &models.IntensityDataset{
		Data: []models.IntensityRecord{
			{Zona: "Perumahan", SubZona: "Perumahan Kepadatan Tinggi", KDBMaks: 50.0},
		},
		Summary: models.IntensitySummary{TotalRecords: 1, TotalZona: 1, TotalSubZona: 1},
	}
	if err := store.WriteIntensity(intensity); err != nil {
		t.Fatalf("WriteIntensity: %v", err)
	}

	return dataset.NewLoader(store)
}

func TestParseRegulationParams(t *testing.T) {
	tests := []struct {
		name   string
		single string
		list   string
		want   []string
	}{
		{"empty", "", "", nil},
		{"single", "T1,B2", "", []string{"T1,B2"}},
		{"single with spaces", "T1, B2", "", []string{"T1,B2"}},
		{"list", "", "I;T1,B2", []string{"I", "T1,B2"}},
		{"url encoded list", "", "T1%2CB2%3BI", []string{"T1,B2", "I"}},
		{"both", "I", "T1,B2", []string{"I", "T1,B2"}},
		{"blank list entries", "", ";;I;", []string{"I"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRegulationParams(tt.single, tt.list); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRegulationParams(%q, %q) = %v, want %v", tt.single, tt.list, got, tt.want)
			}
		})
	}
}

func TestGetActivitiesByRegulation(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))

	// "T1,B2" must match both the tightly and loosely spaced source cells,
	// and nothing else.
	acts, total, err := svc.GetActivities(models.ActivityFilter{Regulation: "T1,B2"})
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if total != 2 || len(acts) != 2 {
		t.Fatalf("total = %d, len = %d, want 2", total, len(acts))
	}
	got := []string{acts[0].Activity, acts[1].Activity}
	want := []string{"Penangkapan ikan hias laut", "Industri pengolahan ikan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("matched = %v, want %v", got, want)
	}
}

func TestGetActivitiesByZoneAndRegulation(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))

	acts, total, err := svc.GetActivities(models.ActivityFilter{Zone: "Badan Air", Regulation: "T1,B2"})
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if total != 1 || acts[0].Activity != "Penangkapan ikan hias laut" {
		t.Errorf("got total %d, activities %+v", total, acts)
	}

	// The same combination in another zone does not leak in.
	_, total, err = svc.GetActivities(models.ActivityFilter{Zone: "Badan Air", Regulation: "I"})
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if total != 0 {
		t.Errorf("zone-scoped filter matched %d activities, want 0", total)
	}
}

func TestGetActivitiesSearch(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))

	acts, total, err := svc.GetActivities(models.ActivityFilter{Search: "IKAN"})
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if total != 2 {
		t.Fatalf("case-insensitive search matched %d, want 2", total)
	}
	for _, act := range acts {
		if act.Activity == "Rumah tinggal" {
			t.Error("search leaked a non-matching activity")
		}
	}
}

func TestGetActivitiesPagination(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))

	acts, total, err := svc.GetActivities(models.ActivityFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if total != 3 {
		t.Errorf("total should count all matches before paging, got %d", total)
	}
	if len(acts) != 1 || acts[0].Activity != "Industri pengolahan ikan" {
		t.Errorf("page 2 = %+v", acts)
	}

	// A page past the end is empty, not an error.
	acts, _, err = svc.GetActivities(models.ActivityFilter{Page: 9, PageSize: 2})
	if err != nil {
		t.Fatalf("GetActivities: %v", err)
	}
	if len(acts) != 0 {
		t.Errorf("overrun page returned %d activities", len(acts))
	}
}

func TestGetZones(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))
	zones, err := svc.GetZones(models.SourceTrikora)
	if err != nil {
		t.Fatalf("GetZones: %v", err)
	}
	want := []string{"Badan Air", "Kawasan Peruntukan Industri", "Perumahan Kepadatan Tinggi"}
	if !reflect.DeepEqual(zones, want) {
		t.Errorf("zones = %v, want %v", zones, want)
	}
}

func TestGetRegulations(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))
	regs := svc.GetRegulations()
	if len(regs) != 8 {
		t.Errorf("regulation table has %d entries, want 8", len(regs))
	}
	// Callers may not be able to mutate the shared table.
	regs[models.CodeI] = "tampered"
	if svc.GetRegulations()[models.CodeI] == "tampered" {
		t.Error("regulation table leaked mutable shared state")
	}
}

func TestGetMergedZones(t *testing.T) {
	svc := NewZoningService(nil, testLoader(t))
	merged, err := svc.GetMergedZones(models.SourceTrikora)
	if err != nil {
		t.Fatalf("GetMergedZones: %v", err)
	}

	byZone := make(map[string]models.MergedZone)
	for _, mz := range merged {
		byZone[mz.Zone] = mz
	}
	perumahan := byZone["Perumahan Kepadatan Tinggi"]
	if !perumahan.Matched || len(perumahan.Intensity) != 1 {
		t.Errorf("Perumahan merge = %+v", perumahan)
	}
	if badanAir := byZone["Badan Air"]; badanAir.Matched {
		t.Errorf("Badan Air should be unmatched: %+v", badanAir)
	}
}
