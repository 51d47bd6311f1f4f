package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eltecal/backend/internal/app/models"
)

func TestParseFormat(t *testing.T) {
	for _, value := range []string{"ics", "xlsx", "csv", "pdf"} {
		format, ok := ParseFormat(value)
		assert.True(t, ok, "format %q", value)
		assert.Equal(t, Format(value), format)
	}

	format, ok := ParseFormat("ICS")
	assert.True(t, ok)
	assert.Equal(t, FormatICS, format)

	for _, value := range []string{"", "doc", "json"} {
		_, ok := ParseFormat(value)
		assert.False(t, ok, "format %q", value)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/calendar", FormatICS.ContentType())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", FormatXLSX.ContentType())
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "application/octet-stream", Format("doc").ContentType())
}

func TestFormatSlot(t *testing.T) {
	slot := &models.ScheduleSlot{Weekday: 3, StartTime: "18:00", EndTime: "19:30", Location: "Déli Tömb 2-502"}
	assert.Equal(t, "SZE:18:00-19:30(Déli Tömb 2-502)", formatSlot(slot))

	slot = &models.ScheduleSlot{Weekday: 1, StartTime: "08:00", EndTime: "09:30"}
	assert.Equal(t, "H:08:00-09:30", formatSlot(slot))
}

func TestFormatSchedule(t *testing.T) {
	course := &models.Course{
		Slots: []*models.ScheduleSlot{
			{Weekday: 1, StartTime: "08:00", EndTime: "09:30"},
			{Weekday: 4, StartTime: "10:00", EndTime: "11:30", Location: "0.81"},
		},
	}
	assert.Equal(t, "H:08:00-09:30; CS:10:00-11:30(0.81)", formatSchedule(course))

	assert.Equal(t, "", formatSchedule(&models.Course{}))
}

func TestCourseTypeLabel(t *testing.T) {
	assert.Equal(t, "elmélet", courseTypeLabel(models.CourseTypeLecture))
	assert.Equal(t, "gyakorlat", courseTypeLabel(models.CourseTypePractice))
	assert.Equal(t, "konzultáció", courseTypeLabel(models.CourseTypeConsultation))
	assert.Equal(t, "egyéb", courseTypeLabel(models.CourseTypeOther))
}
