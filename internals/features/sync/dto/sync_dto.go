package dto

// Job summary returned by every sync endpoint. The endpoint itself always
// answers 200; failures show up as status=fail plus a note.
type JobSummary struct {
	Job           string `json:"job"`
	Status        string `json:"status"`
	ItemsUpserted int    `json:"items_upserted"`
	FinishedAt    string `json:"finished_at"`
	Note          string `json:"note"`
}
