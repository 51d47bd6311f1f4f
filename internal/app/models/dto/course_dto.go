package dto

// ScheduleSlotRequest is one weekly occurrence of a course.
type ScheduleSlotRequest struct {
	Weekday   int    `json:"weekday" binding:"required,min=1,max=7"`
	StartTime string `json:"startTime" binding:"required" example:"18:00"`
	EndTime   string `json:"endTime" binding:"required" example:"19:30"`
	Location  string `json:"location,omitempty"`
}

// CreateCourseRequest represents course creation data. Slots are optional;
// on update the submitted set replaces the stored one wholesale.
type CreateCourseRequest struct {
	Code        string                `json:"code" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	ClassCode   string                `json:"classCode,omitempty"`
	Type        string                `json:"type,omitempty" example:"LECTURE"`
	WeeklyHours int                   `json:"weeklyHours,omitempty"`
	Instructors []string              `json:"instructors,omitempty"`
	Slots       []ScheduleSlotRequest `json:"slots,omitempty" binding:"dive"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest = CreateCourseRequest
