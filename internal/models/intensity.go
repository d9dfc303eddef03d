package models

// IntensityRecord is one row of the building-intensity table. JSON keys carry
// the spreadsheet column headers verbatim, Indonesian names and units
// included, because the original files are consumed by name downstream.
// Numeric columns hold float64 after coercion but may degrade to string for
// free-form cells (e.g. "4 - 8"); nil means the source cell was blank or "-".
type IntensityRecord struct {
	Zona            string `json:"Zona"`
	SubZona         string `json:"Sub Zona"`
	Jenis           string `json:"Jenis,omitempty"`
	KDBMaks         any    `json:"KDB Maks (%)"`
	KLBMaks         any    `json:"KLB Maks"`
	KDHMin          any    `json:"KDH Min (%)"`
	KTBMaks         any    `json:"KTB Maks (%)"`
	GSBArteri       any    `json:"GSB Min Arteri (m)"`
	GSBKolektor     any    `json:"GSB Min Kolektor (m)"`
	GSBLokal        any    `json:"GSB Min Lokal (m)"`
	JBSMin          any    `json:"JBS Min (m)"`
	JBBMin          any    `json:"JBB Min (m)"`
	TinggiMaks      any    `json:"Tinggi Bangunan Maks (m)"`
	LuasKavelingMin any    `json:"Luas Kaveling Min (m2)"`
	Tampilan        string `json:"Tampilan Bangunan,omitempty"`
	Keterangan      string `json:"Keterangan,omitempty"`
}

// IntensityHeaders returns the column headers in table order.
func IntensityHeaders() []string {
	return []string{
		"Zona", "Sub Zona", "Jenis",
		"KDB Maks (%)", "KLB Maks", "KDH Min (%)", "KTB Maks (%)",
		"GSB Min Arteri (m)", "GSB Min Kolektor (m)", "GSB Min Lokal (m)",
		"JBS Min (m)", "JBB Min (m)",
		"Tinggi Bangunan Maks (m)", "Luas Kaveling Min (m2)",
		"Tampilan Bangunan", "Keterangan",
	}
}

// IntensitySummary holds counts derived from the record list.
type IntensitySummary struct {
	TotalRecords int `json:"totalRecords"`
	TotalZona    int `json:"totalZona"`
	TotalSubZona int `json:"totalSubZona"`
}

// IntensityFilterLists are the sorted, deduplicated values offered as filter
// options. Regenerated from the data on every assembly, never hand-maintained.
type IntensityFilterLists struct {
	ZonaList        []string `json:"zonaList"`
	SubZonaList     []string `json:"subZonaList"`
	JenisKhususList []string `json:"jenisKhususList"`
}

// IntensityDataset is the persisted shape of the building-intensity source:
// the records plus indexes derived entirely from them.
type IntensityDataset struct {
	Data          []IntensityRecord            `json:"data"`
	Summary       IntensitySummary             `json:"summary"`
	GroupedByZona map[string][]IntensityRecord `json:"groupedByZona"`
	Filters       IntensityFilterLists         `json:"filters"`
	Headers       []string                     `json:"headers"`
}

// MergedZone unions one permitted-use zone with its building-intensity
// counterpart. Intensity carries all Jenis variants of the matched sub-zone;
// it is empty (not omitted) when no counterpart exists.
type MergedZone struct {
	Zone          string            `json:"zone"`
	Matched       bool              `json:"matched"`
	Intensity     []IntensityRecord `json:"intensity"`
	ActivityCount int               `json:"activityCount"`
}
