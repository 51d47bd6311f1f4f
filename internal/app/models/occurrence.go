package models

import (
	"time"
)

// Occurrence is a concrete dated instance of a schedule slot, produced by
// expanding a semester's weekly slots over a calendar window.
type Occurrence struct {
	CourseID   int64      `json:"courseId"`
	CourseCode string     `json:"courseCode"`
	CourseName string     `json:"courseName"`
	Type       CourseType `json:"type"`
	Location   string     `json:"location,omitempty"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
}
