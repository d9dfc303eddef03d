package export

import (
	"strings"
	"testing"
)

func sampleRows() []Row {
	return []Row{
		{No: "1", Kegiatan: "Penangkapan ikan hias laut", Kode: "T1,B2", Keterangan: "Pembatasan pengoperasian; Wajib menyusun kajian"},
		{No: "2", Kegiatan: "Rumah tinggal", Kode: "I", Keterangan: "Kegiatan diizinkan"},
	}
}

func TestWriteCSV(t *testing.T) {
	data, err := WriteCSV(sampleRows())
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if lines[0] != `"No","Kegiatan","Kode Regulasi","Keterangan"` {
		t.Errorf("header = %s", lines[0])
	}
	if lines[1] != `"1","Penangkapan ikan hias laut","T1,B2","Pembatasan pengoperasian; Wajib menyusun kajian"` {
		t.Errorf("first row = %s", lines[1])
	}
}

func TestWriteCSVQuoting(t *testing.T) {
	rows := []Row{{No: "1", Kegiatan: `Toko "serba ada"`, Kode: "I", Keterangan: ""}}
	data, err := WriteCSV(rows)
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(string(data), `"Toko ""serba ada"""`) {
		t.Errorf("interior quotes not doubled: %s", data)
	}
	// Every field is quoted even when it needs no escaping.
	if !strings.Contains(string(data), `"I",""`) {
		t.Errorf("plain fields should still be quoted: %s", data)
	}
}

func TestWriteTabDelimited(t *testing.T) {
	data, err := WriteTabDelimited(sampleRows())
	if err != nil {
		t.Fatalf("WriteTabDelimited: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if got := strings.Split(strings.TrimRight(lines[0], "\r"), "\t"); len(got) != 4 || got[2] != "Kode Regulasi" {
		t.Errorf("header fields = %v", got)
	}
	if !strings.Contains(lines[1], "T1,B2") {
		t.Errorf("combination code mangled: %s", lines[1])
	}
}

func TestWriteText(t *testing.T) {
	data := WriteText(sampleRows(), "Badan Air")
	text := string(data)
	if !strings.HasPrefix(text, "Daftar Kegiatan Badan Air\n\n") {
		t.Errorf("missing zone title:\n%s", text)
	}
	if !strings.Contains(text, "1. Penangkapan ikan hias laut (T1,B2)\n") {
		t.Errorf("missing numbered line:\n%s", text)
	}
	if !strings.Contains(text, "   Kegiatan diizinkan\n") {
		t.Errorf("missing indented description:\n%s", text)
	}
}

func TestWriteTextNoZone(t *testing.T) {
	data := WriteText(sampleRows(), "")
	if strings.HasPrefix(string(data), "Daftar Kegiatan") {
		t.Errorf("title should be omitted without a zone:\n%s", data)
	}
}
