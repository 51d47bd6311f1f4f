package dto

// ImportResponse reports the outcome of a spreadsheet import.
type ImportResponse struct {
	ImportID    int64    `json:"importId"`
	FileName    string   `json:"fileName"`
	CourseCount int      `json:"courseCount"`
	SlotCount   int      `json:"slotCount"`
	Warnings    []string `json:"warnings,omitempty"`
}
