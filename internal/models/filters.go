package models

// ActivityFilter represents query parameters for filtering permitted-use
// activities. Regulations is a semicolon-separated list of combination
// strings; Regulation is the single-combination legacy parameter.
type ActivityFilter struct {
	DataSource  string `form:"dataSource"`  // trikora (default) or bsb
	Zone        string `form:"zone"`        // zone name, matched verbatim
	Regulation  string `form:"regulation"`  // legacy single combination, e.g. "T1,B2"
	Regulations string `form:"regulations"` // semicolon-separated combinations
	Search      string `form:"search"`      // substring on activity name
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
}

// IntensityFilter represents query parameters for the intensity table.
type IntensityFilter struct {
	Zona    string `form:"zona"`
	SubZona string `form:"subZona"`
	Jenis   string `form:"jenis"`
}

// KepsusFilter represents query parameters for special-provision records.
type KepsusFilter struct {
	KawasanType string `form:"kawasanType"`
	KodeSWP     string `form:"kodeSWP"`
	KodeBlok    string `form:"kodeBlok"`
	Search      string `form:"search"`
}
