package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jengzang/rdtr-backend-go/internal/dataset"
	"github.com/jengzang/rdtr-backend-go/internal/database"
	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/repository"
)

func intensityLoader(t *testing.T) *dataset.Loader {
	t.Helper()
	store := dataset.NewStore(t.TempDir())
	ds := &models.IntensityDataset{
		Data: []models.IntensityRecord{
			{Zona: "Perumahan", SubZona: "Perumahan Kepadatan Tinggi", KDBMaks: 50.0, KLBMaks: 1.2},
			{Zona: "Perumahan", SubZona: "Perumahan Kepadatan Sedang", KDBMaks: 60.0},
			{Zona: "Perdagangan dan Jasa", SubZona: "Perdagangan dan Jasa Skala Kota", Jenis: "Persil disebelah barat jalan", KDBMaks: 80.0},
		},
		Summary: models.IntensitySummary{TotalRecords: 3, TotalZona: 2, TotalSubZona: 3},
		Filters: models.IntensityFilterLists{
			ZonaList:        []string{"Perdagangan dan Jasa", "Perumahan"},
			SubZonaList:     []string{"Perdagangan dan Jasa Skala Kota", "Perumahan Kepadatan Sedang", "Perumahan Kepadatan Tinggi"},
			JenisKhususList: []string{"Persil disebelah barat jalan"},
		},
	}
	if err := store.WriteIntensity(ds); err != nil {
		t.Fatalf("WriteIntensity: %v", err)
	}
	return dataset.NewLoader(store)
}

func TestIntensityGetRecords(t *testing.T) {
	svc := NewIntensityService(nil, intensityLoader(t))

	records, err := svc.GetRecords(models.IntensityFilter{Zona: "Perumahan"})
	if err != nil {
		t.Fatalf("GetRecords: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("zona filter matched %d, want 2", len(records))
	}

	records, err = svc.GetRecords(models.IntensityFilter{SubZona: "Perumahan Kepadatan Sedang"})
	if err != nil {
		t.Fatalf("GetRecords: %v", err)
	}
	if len(records) != 1 || records[0].SubZona != "Perumahan Kepadatan Sedang" {
		t.Errorf("sub-zona filter = %+v", records)
	}

	// The list filter matches exact values only, unlike the text lookup.
	records, err = svc.GetRecords(models.IntensityFilter{SubZona: "Kepadatan Sedang"})
	if err != nil {
		t.Fatalf("GetRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("partial value matched %d records, want 0", len(records))
	}
}

func TestIntensityGetFilterLists(t *testing.T) {
	svc := NewIntensityService(nil, intensityLoader(t))
	lists, err := svc.GetFilterLists()
	if err != nil {
		t.Fatalf("GetFilterLists: %v", err)
	}
	if len(lists.ZonaList) != 2 || len(lists.SubZonaList) != 3 || len(lists.JenisKhususList) != 1 {
		t.Errorf("filter lists = %+v", lists)
	}
}

func TestIntensityGetFormattedText(t *testing.T) {
	svc := NewIntensityService(nil, intensityLoader(t))

	text, err := svc.GetFormattedText("Perumahan", "Perumahan Kepadatan Tinggi")
	if err != nil {
		t.Fatalf("GetFormattedText: %v", err)
	}
	if !strings.HasPrefix(text, "Ketentuan Intensitas Pemanfaatan Ruang Perumahan Kepadatan Tinggi:") {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(text, "KDB Maksimum 50%") {
		t.Errorf("missing KDB clause:\n%s", text)
	}
}

func TestIntensityGetFormattedTextUnresolvable(t *testing.T) {
	svc := NewIntensityService(nil, intensityLoader(t))
	text, err := svc.GetFormattedText("Badan Air", "Badan Air")
	if err != nil {
		t.Fatalf("GetFormattedText: %v", err)
	}
	if text != "-" {
		t.Errorf("unresolvable zone = %q, want dash", text)
	}
}

func TestIntensityTextFromQueryStoreOnly(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := repository.NewIntensityRepository(db)
	if err := repo.Replace([]models.IntensityRecord{
		{Zona: "Perumahan", SubZona: "Perumahan Kepadatan Tinggi", KDBMaks: 50.0},
	}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	// The data directory is empty: every read must come from the store.
	svc := NewIntensityService(repo, dataset.NewLoader(dataset.NewStore(t.TempDir())))

	text, err := svc.GetFormattedText("Perumahan", "Perumahan Kepadatan Tinggi")
	if err != nil {
		t.Fatalf("GetFormattedText: %v", err)
	}
	if !strings.Contains(text, "KDB Maksimum 50%") {
		t.Errorf("text = %q", text)
	}

	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.TotalRecords != 1 || summary.TotalZona != 1 || summary.TotalSubZona != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestIntensityGetSummary(t *testing.T) {
	svc := NewIntensityService(nil, intensityLoader(t))
	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.TotalRecords != 3 || summary.TotalZona != 2 {
		t.Errorf("summary = %+v", summary)
	}
}
