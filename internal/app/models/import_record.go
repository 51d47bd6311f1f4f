package models

import (
	"time"
)

// ImportRecord captures one spreadsheet import run for a semester.
// Warnings hold per-row messages for data that was skipped.
type ImportRecord struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	SemesterID  int64     `json:"semesterId" db:"semester_id"`
	FileName    string    `json:"fileName" db:"file_name"`
	FilePath    string    `json:"filePath" db:"file_path"`
	CourseCount int       `json:"courseCount" db:"course_count"`
	SlotCount   int       `json:"slotCount" db:"slot_count"`
	Warnings    []string  `json:"warnings,omitempty" db:"warnings"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
