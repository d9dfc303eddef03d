package ingest

import (
	"reflect"
	"testing"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

func TestAssembleZoning(t *testing.T) {
	activities := []models.Activity{
		{Activity: "Rumah tinggal", Zones: map[string]string{"Perumahan": "I", "Badan Air": "T1"}},
		{Activity: "Pertanian", Zones: map[string]string{"Perumahan": "B1"}},
	}
	ds := AssembleZoning(activities)

	want := []string{"Badan Air", "Perumahan"}
	if !reflect.DeepEqual(ds.Zones, want) {
		t.Errorf("zones = %v, want %v", ds.Zones, want)
	}
	if ds.Activities[0].ActivityNumber != "001" || ds.Activities[1].ActivityNumber != "002" {
		t.Errorf("activity numbers = %q, %q", ds.Activities[0].ActivityNumber, ds.Activities[1].ActivityNumber)
	}
	if ds.Regulations[models.CodeI] == "" || ds.Regulations[models.CodeX] == "" {
		t.Error("regulation table should cover every code")
	}

	// Every zone referenced by an activity appears in the zone list.
	index := make(map[string]bool)
	for _, z := range ds.Zones {
		index[z] = true
	}
	for _, act := range ds.Activities {
		for zone := range act.Zones {
			if !index[zone] {
				t.Errorf("zone %q referenced by %q missing from zone list", zone, act.Activity)
			}
		}
	}
}

func TestAssembleIntensity(t *testing.T) {
	records := []models.IntensityRecord{
		{Zona: "Perumahan", SubZona: "Perumahan Kepadatan Tinggi", KDBMaks: 50.0},
		{Zona: "Perumahan", SubZona: "Perumahan Kepadatan Sedang", KDBMaks: 60.0},
		{Zona: "Perdagangan dan Jasa", SubZona: "Perdagangan dan Jasa Skala Kota", Jenis: "Persil disebelah barat jalan"},
	}
	ds := AssembleIntensity(records)

	if ds.Summary.TotalRecords != 3 || ds.Summary.TotalZona != 2 || ds.Summary.TotalSubZona != 3 {
		t.Errorf("summary = %+v", ds.Summary)
	}
	if len(ds.GroupedByZona["Perumahan"]) != 2 {
		t.Errorf("grouped Perumahan = %d records, want 2", len(ds.GroupedByZona["Perumahan"]))
	}

	// The grouped index is derived from the records; regrouping Data must
	// reproduce it exactly.
	regrouped := make(map[string][]models.IntensityRecord)
	for _, rec := range ds.Data {
		regrouped[rec.Zona] = append(regrouped[rec.Zona], rec)
	}
	if !reflect.DeepEqual(ds.GroupedByZona, regrouped) {
		t.Error("groupedByZona does not round-trip with data")
	}

	if !reflect.DeepEqual(ds.Filters.ZonaList, []string{"Perdagangan dan Jasa", "Perumahan"}) {
		t.Errorf("zona list = %v", ds.Filters.ZonaList)
	}
	if !reflect.DeepEqual(ds.Filters.JenisKhususList, []string{"Persil disebelah barat jalan"}) {
		t.Errorf("jenis list = %v", ds.Filters.JenisKhususList)
	}
	if !reflect.DeepEqual(ds.Headers, models.IntensityHeaders()) {
		t.Errorf("headers = %v", ds.Headers)
	}
}
