package domain

type ImportResult struct {
	BatchID string   `json:"batch_id"`
	Entity  string   `json:"entity"`
	Rows    int      `json:"rows"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
	DryRun  bool     `json:"dry_run"`
}
