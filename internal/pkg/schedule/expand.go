// Package schedule expands weekly schedule slots into concrete dated
// occurrences over a calendar window.
package schedule

import (
	"errors"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/helpers"
	"github.com/eltecal/backend/internal/pkg/logger"
)

const defaultMaxOccurrencesPerSlot = 500

// ExpandConfig controls how recurrence expansion is performed.
type ExpandConfig struct {
	// SemesterStart / SemesterEnd bound the recurrence itself: no slot
	// occurs before the semester starts or after it ends.
	SemesterStart time.Time
	SemesterEnd   time.Time

	// RangeStart / RangeEnd define the inclusive window to evaluate over,
	// typically one day, ISO week, or calendar month.
	RangeStart time.Time
	RangeEnd   time.Time

	// Location is the timezone slots are interpreted in. If nil, time.Local.
	Location *time.Location

	// MaxOccurrencesPerSlot is a safety cap against runaway expansions.
	// If zero, defaultMaxOccurrencesPerSlot is used.
	MaxOccurrencesPerSlot int
}

// ExpandCourses expands every schedule slot of the given courses into dated
// occurrences within the configured window, sorted by start time. Each slot
// becomes a weekly recurrence anchored at its first occurrence on or after
// the semester start and bounded by the semester end.
func ExpandCourses(courses []*models.Course, cfg ExpandConfig) ([]models.Occurrence, error) {
	if cfg.RangeEnd.Before(cfg.RangeStart) {
		return nil, errors.New("expand: RangeEnd is before RangeStart")
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.MaxOccurrencesPerSlot <= 0 {
		cfg.MaxOccurrencesPerSlot = defaultMaxOccurrencesPerSlot
	}

	occurrences := make([]models.Occurrence, 0)

	for _, course := range courses {
		for _, slot := range course.Slots {
			slotOccs, err := expandSlot(course, slot, cfg)
			if err != nil {
				logger.Warn().Err(err).
					Int64("courseID", course.ID).
					Int("weekday", slot.Weekday).
					Msg("Skipping unexpandable schedule slot")
				continue
			}
			occurrences = append(occurrences, slotOccs...)
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if !occurrences[i].Start.Equal(occurrences[j].Start) {
			return occurrences[i].Start.Before(occurrences[j].Start)
		}
		return occurrences[i].CourseCode < occurrences[j].CourseCode
	})

	return occurrences, nil
}

func expandSlot(course *models.Course, slot *models.ScheduleSlot, cfg ExpandConfig) ([]models.Occurrence, error) {
	startMin, err := helpers.ParseClock(slot.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := helpers.ParseClock(slot.EndTime)
	if err != nil {
		return nil, err
	}

	semStart := helpers.DateIn(cfg.SemesterStart, cfg.Location)
	semEnd := helpers.DateIn(cfg.SemesterEnd, cfg.Location)

	anchor := helpers.AtClock(FirstWeekdayOnOrAfter(semStart, slot.Weekday), startMin)
	until := helpers.AtClock(semEnd, 24*60-1)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: anchor,
		Until:   until,
	})
	if err != nil {
		return nil, err
	}

	rangeStart := cfg.RangeStart.In(cfg.Location)
	rangeEnd := cfg.RangeEnd.In(cfg.Location)

	occTimes := r.Between(rangeStart, rangeEnd, true)
	if len(occTimes) > cfg.MaxOccurrencesPerSlot {
		occTimes = occTimes[:cfg.MaxOccurrencesPerSlot]
	}

	duration := time.Duration(endMin-startMin) * time.Minute
	out := make([]models.Occurrence, 0, len(occTimes))
	for _, start := range occTimes {
		out = append(out, models.Occurrence{
			CourseID:   course.ID,
			CourseCode: course.Code,
			CourseName: course.Name,
			Type:       course.Type,
			Location:   slot.Location,
			Start:      start,
			End:        start.Add(duration),
		})
	}

	return out, nil
}

// FirstWeekdayOnOrAfter returns the first date on or after t that falls on
// the given ISO weekday (1 = Monday ... 7 = Sunday), at t's time of day.
func FirstWeekdayOnOrAfter(t time.Time, isoWeekday int) time.Time {
	current := int(t.Weekday())
	if current == 0 {
		current = 7
	}
	delta := (isoWeekday - current + 7) % 7
	return t.AddDate(0, 0, delta)
}

// Window bounds for the supported calendar views.

// DayWindow returns the [start, end] bounds of the given date's day.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Second)
}

// WeekWindow returns the [start, end] bounds of the ISO week containing date.
func WeekWindow(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := day.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 7).Add(-time.Second)
}

// MonthWindow returns the [start, end] bounds of the calendar month
// containing date.
func MonthWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Second)
}
