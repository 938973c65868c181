package shared

// ImportSummary reports the outcome of one inventory import.
type ImportSummary struct {
	Read     int `json:"read"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
