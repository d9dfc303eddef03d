package ingest

import (
	"testing"

	"github.com/jengzang/rdtr-backend-go/internal/models"
)

func testSourceConfig() SourceConfig {
	return SourceConfig{
		Name:        models.SourceTrikora,
		Header:      HeaderConfig{Keywords: []string{"kegiatan", "zona"}, FallbackRow: 0},
		HeaderDepth: 2,
		ActivityCol: 1,
		ZoneStart:   2,
		MinNameLen:  3,
	}
}

func permittedUseGrid() [][]string {
	return [][]string{
		{"No", "Jenis Kegiatan Pemanfaatan Zona", "", ""},
		{"", "", "Badan Air", "Perumahan Kepadatan Tinggi"},
		{"1", "Penangkapan ikan hias laut", "T1,B2", "I"},
		{"2", "Industri berat", "X", "T1"},
		{"", "", "", ""},
		{"3", "ab", "I", "I"},
		{"", "Jenis Kegiatan", "", ""},
		{"4", "Peternakan unggas", "X,T1", "-"},
	}
}

func TestExtractActivities(t *testing.T) {
	acts, loc := ExtractActivities(permittedUseGrid(), testSourceConfig())
	if loc.Fallback {
		t.Fatal("header scan should not fall back")
	}
	if loc.Row != 0 {
		t.Fatalf("header row = %d, want 0", loc.Row)
	}

	if len(acts) != 3 {
		t.Fatalf("got %d activities, want 3: %+v", len(acts), acts)
	}

	first := acts[0]
	if first.Activity != "Penangkapan ikan hias laut" {
		t.Errorf("first activity = %q", first.Activity)
	}
	if got := first.Zones["Badan Air"]; got != "T1,B2" {
		t.Errorf("Badan Air permission = %q, want %q", got, "T1,B2")
	}
	if got := first.Zones["Perumahan Kepadatan Tinggi"]; got != "I" {
		t.Errorf("Perumahan permission = %q, want %q", got, "I")
	}
}

func TestExtractActivitiesDropsDisallowed(t *testing.T) {
	acts, _ := ExtractActivities(permittedUseGrid(), testSourceConfig())

	industri := acts[1]
	if industri.Activity != "Industri berat" {
		t.Fatalf("second activity = %q", industri.Activity)
	}
	if _, ok := industri.Zones["Badan Air"]; ok {
		t.Error("X cell must not produce a zone entry")
	}
	if got := industri.Zones["Perumahan Kepadatan Tinggi"]; got != "T1" {
		t.Errorf("Perumahan permission = %q, want %q", got, "T1")
	}

	// An X combined with other codes is invalid and the cell is dropped.
	peternakan := acts[2]
	if len(peternakan.Zones) != 0 {
		t.Errorf("X-combination cell should be dropped, got zones %v", peternakan.Zones)
	}

	for _, act := range acts {
		for zone, perm := range act.Zones {
			if perm == "X" {
				t.Errorf("activity %q zone %q carries X", act.Activity, zone)
			}
		}
	}
}

func TestExtractActivitiesCanonicalizesSpacing(t *testing.T) {
	grid := [][]string{
		{"No", "Jenis Kegiatan Pemanfaatan Zona", ""},
		{"", "", "Badan Air"},
		{"1", "Pembudidayaan ikan", "T1, B2"},
	}
	acts, _ := ExtractActivities(grid, testSourceConfig())
	if len(acts) != 1 {
		t.Fatalf("got %d activities, want 1", len(acts))
	}
	// Spacing variants of the same combination collapse to one stored form.
	if got := acts[0].Zones["Badan Air"]; got != "T1,B2" {
		t.Errorf("permission stored as %q, want %q", got, "T1,B2")
	}
}

func TestExtractActivitiesSkipsShortAndHeaderRepeat(t *testing.T) {
	acts, _ := ExtractActivities(permittedUseGrid(), testSourceConfig())
	for _, act := range acts {
		if act.Activity == "ab" {
			t.Error("two-rune activity name should be skipped")
		}
		if act.Activity == "Jenis Kegiatan" {
			t.Error("header repeat row should be skipped")
		}
	}
}

func TestIsHeaderRepeat(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Jenis Kegiatan", true},
		{"Kegiatan", true},
		{"Nama Sub Zona", true},
		{"Penangkapan ikan", false},
		{"Rumah tinggal", false},
	}
	for _, tt := range tests {
		if got := isHeaderRepeat(tt.name); got != tt.want {
			t.Errorf("isHeaderRepeat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
