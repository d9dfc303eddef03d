package models

// IngestRun is the audit record of one non-preview ingestion run.
type IngestRun struct {
	ID               string `json:"id"`
	Source           string `json:"source"`
	Activities       int    `json:"activities"`
	Zones            int    `json:"zones"`
	IntensityRecords int    `json:"intensityRecords"`
	KepsusRecords    int    `json:"kepsusRecords"`
	HeaderFallback   bool   `json:"headerFallback"` // a header scan missed and a fallback row was used
	CreatedAt        int64  `json:"createdAt"`      // unix seconds
}
