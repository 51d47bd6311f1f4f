package models

import (
	"time"
)

// Semester is a named academic term owned by a user, e.g. "2024/25/1".
// Courses hang off a semester and are replaced wholesale on import.
type Semester struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name" example:"2024/25/1"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	IsCurrent bool      `json:"isCurrent" db:"is_current"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
