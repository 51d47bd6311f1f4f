package models

import (
	"time"
)

// CourseType classifies a course the way the Neptun export does.
type CourseType string

const (
	CourseTypeLecture      CourseType = "LECTURE"
	CourseTypePractice     CourseType = "PRACTICE"
	CourseTypeConsultation CourseType = "CONSULTATION"
	CourseTypeOther        CourseType = "OTHER"
)

// Course represents a single university subject/class record within a semester.
type Course struct {
	ID          int64      `json:"id" db:"id"`
	SemesterID  int64      `json:"semesterId" db:"semester_id"`
	Code        string     `json:"code" db:"code" example:"IP-18KVSZAMG"`
	Name        string     `json:"name" db:"name" example:"Számítógépes alapismeretek"`
	ClassCode   string     `json:"classCode,omitempty" db:"class_code" example:"1"`
	Type        CourseType `json:"type" db:"course_type" example:"PRACTICE"`
	WeeklyHours int        `json:"weeklyHours" db:"weekly_hours"`
	Instructors []string   `json:"instructors" db:"instructors"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Slots []*ScheduleSlot `json:"slots,omitempty"`
}

// ScheduleSlot is a day-of-week plus time-range occurrence for a course.
// Times are "HH:MM" strings; weekday is ISO (1 = Monday ... 7 = Sunday).
type ScheduleSlot struct {
	ID        int64  `json:"id" db:"id"`
	CourseID  int64  `json:"courseId" db:"course_id"`
	Weekday   int    `json:"weekday" db:"weekday" example:"3"`
	StartTime string `json:"startTime" db:"start_time" example:"18:00"`
	EndTime   string `json:"endTime" db:"end_time" example:"19:30"`
	Location  string `json:"location,omitempty" db:"location" example:"Déli Tömb 2-502 (QGYLAB)"`
}
