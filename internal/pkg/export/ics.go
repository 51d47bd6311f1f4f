package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/helpers"
	"github.com/eltecal/backend/internal/pkg/schedule"
)

const icsProductID = "-//ELTE Calendar//eltecal.app//HU"

// BuildICS renders the semester schedule as an iCalendar file: one VEVENT
// per schedule slot carrying a weekly RRULE bounded by the semester end.
func BuildICS(semester *models.Semester, courses []*models.Course, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.Local
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetName(semester.Name)

	endDay := helpers.DateIn(semester.EndDate, loc)
	until := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, loc).UTC()

	now := time.Now()
	for _, course := range courses {
		for _, slot := range course.Slots {
			startMin, err := helpers.ParseClock(slot.StartTime)
			if err != nil {
				return nil, fmt.Errorf("course %s has bad slot start %q: %w", course.Code, slot.StartTime, err)
			}
			endMin, err := helpers.ParseClock(slot.EndTime)
			if err != nil {
				return nil, fmt.Errorf("course %s has bad slot end %q: %w", course.Code, slot.EndTime, err)
			}

			first := schedule.FirstWeekdayOnOrAfter(helpers.DateIn(semester.StartDate, loc), slot.Weekday)
			start := helpers.AtClock(first, startMin)
			end := helpers.AtClock(first, endMin)

			event := cal.AddEvent(uuid.New().String() + "@eltecal.app")
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(fmt.Sprintf("%s (%s)", course.Name, course.Code))
			if slot.Location != "" {
				event.SetLocation(slot.Location)
			}
			if len(course.Instructors) > 0 {
				event.SetDescription("Oktatók: " + joinInstructors(course.Instructors))
			}
			event.SetProperty(ical.ComponentPropertyRrule,
				fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", until.Format("20060102T150405Z")))
		}
	}

	return []byte(cal.Serialize()), nil
}

func joinInstructors(instructors []string) string {
	out := ""
	for i, name := range instructors {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
