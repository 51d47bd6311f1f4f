package dto

import (
	"time"

	"github.com/eltecal/backend/internal/app/models"
)

// CalendarView selects the expansion window for occurrence listing.
type CalendarView string

const (
	CalendarViewDay   CalendarView = "day"
	CalendarViewWeek  CalendarView = "week"
	CalendarViewMonth CalendarView = "month"
)

// CalendarResponse is the expanded occurrence list for one window.
type CalendarResponse struct {
	View        CalendarView        `json:"view"`
	RangeStart  time.Time           `json:"rangeStart"`
	RangeEnd    time.Time           `json:"rangeEnd"`
	Occurrences []models.Occurrence `json:"occurrences"`
}
