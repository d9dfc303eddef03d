package models

// KepsusZones holds the two display columns of a special-provision record.
// Keys mirror the source table headers.
type KepsusZones struct {
	Luas      string `json:"Luas (Ha)"`
	Ketentuan string `json:"Ketentuan"`
}

// KepsusMetadata locates a special-provision record in its source table.
type KepsusMetadata struct {
	Tabel       string `json:"tabel"`
	KawasanType string `json:"kawasanType"`
	KodeSWP     string `json:"kodeSWP"`
	KodeBlok    string `json:"kodeBlok"`
}

// KepsusActivity is one "ketentuan khusus" record: a sub-zone inside a
// special area with its area size and provision text. Ketentuan may span
// multiple lines and is re-split into lettered clauses for display.
type KepsusActivity struct {
	Activity string         `json:"activity"`
	Zones    KepsusZones    `json:"zones"`
	Metadata KepsusMetadata `json:"metadata"`
}

// KepsusDataset is the persisted shape of the special-provisions workbook.
type KepsusDataset struct {
	Data []KepsusActivity `json:"data"`
}
