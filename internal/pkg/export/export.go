// Package export renders a semester's schedule into downloadable formats.
package export

import (
	"fmt"
	"strings"

	"github.com/eltecal/backend/internal/app/models"
)

// Format identifies a supported export file format.
type Format string

const (
	FormatICS  Format = "ics"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ContentType returns the MIME type to serve the format with.
func (f Format) ContentType() string {
	switch f {
	case FormatICS:
		return "text/calendar"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat validates a format query value.
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToLower(value)) {
	case FormatICS:
		return FormatICS, true
	case FormatXLSX:
		return FormatXLSX, true
	case FormatCSV:
		return FormatCSV, true
	case FormatPDF:
		return FormatPDF, true
	default:
		return "", false
	}
}

// dayTokens are the Neptun day abbreviations indexed by ISO weekday.
var dayTokens = [8]string{"", "H", "K", "SZE", "CS", "P", "SZO", "V"}

// dayNames are the full Hungarian weekday names indexed by ISO weekday.
var dayNames = [8]string{"", "Hétfő", "Kedd", "Szerda", "Csütörtök", "Péntek", "Szombat", "Vasárnap"}

// formatSlot renders one slot back into the Neptun schedule-text form,
// e.g. "SZE:18:00-19:30(Déli Tömb 2-502)".
func formatSlot(slot *models.ScheduleSlot) string {
	s := fmt.Sprintf("%s:%s-%s", dayTokens[slot.Weekday], slot.StartTime, slot.EndTime)
	if slot.Location != "" {
		s += "(" + slot.Location + ")"
	}
	return s
}

// formatSchedule joins all slots of a course into one schedule-text cell.
func formatSchedule(course *models.Course) string {
	parts := make([]string, 0, len(course.Slots))
	for _, slot := range course.Slots {
		parts = append(parts, formatSlot(slot))
	}
	return strings.Join(parts, "; ")
}

// courseTypeLabel maps the course type back to its Hungarian label.
func courseTypeLabel(t models.CourseType) string {
	switch t {
	case models.CourseTypeLecture:
		return "elmélet"
	case models.CourseTypePractice:
		return "gyakorlat"
	case models.CourseTypeConsultation:
		return "konzultáció"
	default:
		return "egyéb"
	}
}
