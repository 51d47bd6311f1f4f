package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/neptun"
)

func exportSemester() *models.Semester {
	return &models.Semester{
		ID:        1,
		Name:      "2024/25/1",
		StartDate: time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.December, 14, 0, 0, 0, 0, time.UTC),
	}
}

func exportCourses() []*models.Course {
	return []*models.Course{
		{
			ID:          1,
			Code:        "IP-18KVSZAMG",
			Name:        "Számítógépes alapismeretek",
			ClassCode:   "1",
			Type:        models.CourseTypePractice,
			WeeklyHours: 2,
			Instructors: []string{"Kiss Péter"},
			Slots: []*models.ScheduleSlot{
				{Weekday: 3, StartTime: "18:00", EndTime: "19:30", Location: "Déli Tömb 2-502"},
			},
		},
		{
			ID:          2,
			Code:        "IP-18AN1E",
			Name:        "Analízis 1",
			Type:        models.CourseTypeLecture,
			WeeklyHours: 3,
			Instructors: []string{"Nagy Anna", "Szabó Gábor"},
			Slots: []*models.ScheduleSlot{
				{Weekday: 1, StartTime: "08:00", EndTime: "09:30", Location: "Északi Tömb 0.81"},
				{Weekday: 4, StartTime: "10:00", EndTime: "11:30"},
			},
		},
	}
}

func TestBuildICS(t *testing.T) {
	data, err := BuildICS(exportSemester(), exportCourses(), time.UTC)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "BEGIN:VCALENDAR")
	assert.Contains(t, content, "PRODID:-//ELTE Calendar//eltecal.app//HU")

	// One VEVENT per schedule slot.
	assert.Equal(t, 3, strings.Count(content, "BEGIN:VEVENT"))

	assert.Contains(t, content, "IP-18KVSZAMG")
	assert.Contains(t, content, "LOCATION:Déli Tömb 2-502")
	assert.Contains(t, content, "RRULE:FREQ=WEEKLY;UNTIL=20241214T235959Z")
	// First occurrence of the Wednesday slot lands on Sep 11.
	assert.Contains(t, content, "DTSTART:20240911T180000Z")
	assert.Contains(t, content, "Oktatók: Nagy Anna")
}

func TestBuildICSEmptySemester(t *testing.T) {
	data, err := BuildICS(exportSemester(), nil, time.UTC)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "BEGIN:VCALENDAR")
	assert.NotContains(t, content, "BEGIN:VEVENT")
}

func TestBuildICSBadSlotTime(t *testing.T) {
	courses := exportCourses()
	courses[0].Slots[0].StartTime = "bad"

	_, err := BuildICS(exportSemester(), courses, time.UTC)
	assert.Error(t, err)
}

func TestBuildICSWestOfUTCLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	courses := []*models.Course{{
		ID:   3,
		Code: "IP-18SPORT",
		Name: "Sportóra",
		Slots: []*models.ScheduleSlot{
			{Weekday: 7, StartTime: "10:00", EndTime: "11:00"},
		},
	}}

	data, err := BuildICS(exportSemester(), courses, loc)
	require.NoError(t, err)

	// The semester starts Monday Sep 9 (stored as midnight UTC). The first
	// Sunday occurrence is Sep 15 in New York (14:00 UTC), not the Sunday
	// before the semester begins.
	content := string(data)
	assert.Contains(t, content, "DTSTART:20240915T140000Z")
	assert.NotContains(t, content, "DTSTART:20240908")
}

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(exportSemester(), exportCourses())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Tárgy kódja,Tárgy neve,Kurzus kódja,Kurzus típusa,Óraszám,Órarend infó,Oktatók", strings.TrimRight(lines[0], "\r"))
	assert.Contains(t, lines[1], "IP-18KVSZAMG")
	assert.Contains(t, lines[1], "gyakorlat")
	assert.Contains(t, lines[1], "SZE:18:00-19:30(Déli Tömb 2-502)")
	assert.Contains(t, lines[2], "Nagy Anna; Szabó Gábor")
}

// Exported workbooks must survive a round trip through the importer.
func TestBuildXLSXRoundTrip(t *testing.T) {
	data, err := BuildXLSX(exportSemester(), exportCourses())
	require.NoError(t, err)

	result, err := neptun.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Courses, 2)

	first := result.Courses[0]
	assert.Equal(t, "IP-18KVSZAMG", first.Code)
	assert.Equal(t, "Számítógépes alapismeretek", first.Name)
	assert.Equal(t, models.CourseTypePractice, first.Type)
	assert.Equal(t, 2, first.WeeklyHours)
	assert.Equal(t, []string{"Kiss Péter"}, first.Instructors)
	require.Len(t, first.Slots, 1)
	assert.Equal(t, 3, first.Slots[0].Weekday)
	assert.Equal(t, "Déli Tömb 2-502", first.Slots[0].Location)

	second := result.Courses[1]
	assert.Equal(t, models.CourseTypeLecture, second.Type)
	require.Len(t, second.Slots, 2)
	assert.Equal(t, "08:00", second.Slots[0].StartTime)
}

func TestBuildPDF(t *testing.T) {
	data, err := BuildPDF(exportSemester(), exportCourses())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 500)
}
