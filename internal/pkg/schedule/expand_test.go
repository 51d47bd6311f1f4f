package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltecal/backend/internal/app/models"
)

var (
	// 2024-09-09 is a Monday, 2024-12-14 a Saturday.
	semStart = time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC)
	semEnd   = time.Date(2024, time.December, 14, 0, 0, 0, 0, time.UTC)
)

func testCourse() *models.Course {
	return &models.Course{
		ID:   1,
		Code: "IP-18KVSZAMG",
		Name: "Számítógépes alapismeretek",
		Type: models.CourseTypePractice,
		Slots: []*models.ScheduleSlot{
			{Weekday: 3, StartTime: "18:00", EndTime: "19:30", Location: "Déli Tömb 2-502"},
		},
	}
}

func expandCfg(rangeStart, rangeEnd time.Time) ExpandConfig {
	return ExpandConfig{
		SemesterStart: semStart,
		SemesterEnd:   semEnd,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		Location:      time.UTC,
	}
}

func TestExpandCoursesDay(t *testing.T) {
	day, end := DayWindow(time.Date(2024, time.September, 11, 12, 0, 0, 0, time.UTC))

	occs, err := ExpandCourses([]*models.Course{testCourse()}, expandCfg(day, end))
	require.NoError(t, err)
	require.Len(t, occs, 1)

	occ := occs[0]
	assert.Equal(t, "IP-18KVSZAMG", occ.CourseCode)
	assert.Equal(t, models.CourseTypePractice, occ.Type)
	assert.Equal(t, "Déli Tömb 2-502", occ.Location)
	assert.Equal(t, time.Date(2024, time.September, 11, 18, 0, 0, 0, time.UTC), occ.Start)
	assert.Equal(t, time.Date(2024, time.September, 11, 19, 30, 0, 0, time.UTC), occ.End)
}

func TestExpandCoursesWeekBeforeSemester(t *testing.T) {
	// The week before the semester starts has no occurrences.
	start, end := WeekWindow(time.Date(2024, time.September, 4, 0, 0, 0, 0, time.UTC))

	occs, err := ExpandCourses([]*models.Course{testCourse()}, expandCfg(start, end))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestExpandCoursesWeekAfterSemester(t *testing.T) {
	start, end := WeekWindow(time.Date(2024, time.December, 18, 0, 0, 0, 0, time.UTC))

	occs, err := ExpandCourses([]*models.Course{testCourse()}, expandCfg(start, end))
	require.NoError(t, err)
	assert.Empty(t, occs)
}

func TestExpandCoursesMonth(t *testing.T) {
	start, end := MonthWindow(time.Date(2024, time.September, 20, 0, 0, 0, 0, time.UTC))

	occs, err := ExpandCourses([]*models.Course{testCourse()}, expandCfg(start, end))
	require.NoError(t, err)

	// Wednesdays from the semester start: Sep 11, 18, 25.
	require.Len(t, occs, 3)
	assert.Equal(t, 11, occs[0].Start.Day())
	assert.Equal(t, 18, occs[1].Start.Day())
	assert.Equal(t, 25, occs[2].Start.Day())
}

func TestExpandCoursesSorted(t *testing.T) {
	early := &models.Course{
		ID: 2, Code: "IP-18AN1E", Name: "Analízis",
		Slots: []*models.ScheduleSlot{{Weekday: 3, StartTime: "08:00", EndTime: "09:30"}},
	}
	tied := &models.Course{
		ID: 3, Code: "IP-18AB1", Name: "Adatbázisok",
		Slots: []*models.ScheduleSlot{{Weekday: 3, StartTime: "18:00", EndTime: "19:30"}},
	}

	day, end := DayWindow(time.Date(2024, time.September, 11, 0, 0, 0, 0, time.UTC))
	occs, err := ExpandCourses([]*models.Course{testCourse(), tied, early}, expandCfg(day, end))
	require.NoError(t, err)
	require.Len(t, occs, 3)

	assert.Equal(t, "IP-18AN1E", occs[0].CourseCode)
	// Same start time sorts by course code.
	assert.Equal(t, "IP-18AB1", occs[1].CourseCode)
	assert.Equal(t, "IP-18KVSZAMG", occs[2].CourseCode)
}

func TestExpandCoursesWestOfUTCLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	course := &models.Course{
		ID:   4,
		Code: "IP-18SPORT",
		Name: "Sportóra",
		Slots: []*models.ScheduleSlot{
			{Weekday: 7, StartTime: "10:00", EndTime: "11:00"},
		},
	}

	// Semester dates are stored as DATE columns and scan as midnight UTC;
	// the anchor must keep the calendar day in the view's location.
	start, end := MonthWindow(time.Date(2024, time.September, 1, 0, 0, 0, 0, loc))
	cfg := ExpandConfig{
		SemesterStart: semStart,
		SemesterEnd:   semEnd,
		RangeStart:    start,
		RangeEnd:      end,
		Location:      loc,
	}

	occs, err := ExpandCourses([]*models.Course{course}, cfg)
	require.NoError(t, err)
	require.Len(t, occs, 3)

	// The semester starts Monday Sep 9, so the first Sunday slot is Sep 15 —
	// not Sep 8, the Sunday the midnight-UTC instant falls on in New York.
	assert.Equal(t, time.Date(2024, time.September, 15, 10, 0, 0, 0, loc), occs[0].Start)

	semStartLocal := time.Date(2024, time.September, 9, 0, 0, 0, 0, loc)
	for _, occ := range occs {
		assert.False(t, occ.Start.Before(semStartLocal), "occurrence %v precedes the semester start", occ.Start)
	}
}

func TestExpandCoursesInvertedRange(t *testing.T) {
	cfg := expandCfg(semEnd, semStart)
	_, err := ExpandCourses([]*models.Course{testCourse()}, cfg)
	assert.Error(t, err)
}

func TestExpandCoursesSkipsBadSlot(t *testing.T) {
	course := testCourse()
	course.Slots = append(course.Slots, &models.ScheduleSlot{Weekday: 3, StartTime: "bad", EndTime: "19:30"})

	day, end := DayWindow(time.Date(2024, time.September, 11, 0, 0, 0, 0, time.UTC))
	occs, err := ExpandCourses([]*models.Course{course}, expandCfg(day, end))
	require.NoError(t, err)
	assert.Len(t, occs, 1)
}

func TestExpandCoursesCapsOccurrences(t *testing.T) {
	cfg := expandCfg(semStart, semEnd)
	cfg.MaxOccurrencesPerSlot = 2

	occs, err := ExpandCourses([]*models.Course{testCourse()}, cfg)
	require.NoError(t, err)
	assert.Len(t, occs, 2)
}

func TestFirstWeekdayOnOrAfter(t *testing.T) {
	monday := time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, FirstWeekdayOnOrAfter(monday, 1))
	assert.Equal(t, monday.AddDate(0, 0, 2), FirstWeekdayOnOrAfter(monday, 3))
	assert.Equal(t, monday.AddDate(0, 0, 6), FirstWeekdayOnOrAfter(monday, 7))

	sunday := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, sunday, FirstWeekdayOnOrAfter(sunday, 7))
	assert.Equal(t, sunday.AddDate(0, 0, 1), FirstWeekdayOnOrAfter(sunday, 1))
}

func TestDayWindow(t *testing.T) {
	start, end := DayWindow(time.Date(2024, time.September, 11, 15, 30, 45, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.September, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.September, 11, 23, 59, 59, 0, time.UTC), end)
}

func TestWeekWindow(t *testing.T) {
	// Wednesday maps back to the Monday of its ISO week.
	start, end := WeekWindow(time.Date(2024, time.September, 11, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.September, 15, 23, 59, 59, 0, time.UTC), end)

	// Sunday belongs to the week that started the previous Monday.
	start, _ = WeekWindow(time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC), start)

	// Monday starts its own week.
	start, _ = WeekWindow(time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC), start)
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), end)

	start, end = MonthWindow(time.Date(2024, time.December, 31, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC), end)
}
