package models

// Activity is one row of a permitted-use table: an activity name and its
// permission code per zone. Zones where the activity is disallowed (X) are
// dropped at ingestion and never appear in the map.
type Activity struct {
	Activity       string            `json:"activity"`
	ActivityNumber string            `json:"activityNumber,omitempty"` // zero-padded ordinal, cosmetic
	Zones          map[string]string `json:"zones"`
}

// ZoningDataset is the canonical shape of one permitted-use data source
// (Trikora or BSB). Zones is derived from the activities and every zone key
// referenced by an activity appears in it.
type ZoningDataset struct {
	Activities  []Activity                `json:"activities"`
	Zones       []string                  `json:"zones"`
	Regulations map[RegulationCode]string `json:"regulations"`
}

// DataSource names for the two permitted-use workbooks.
const (
	SourceTrikora = "trikora"
	SourceBSB     = "bsb"
)
