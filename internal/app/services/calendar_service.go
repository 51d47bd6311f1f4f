package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/repositories"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/helpers"
	"github.com/eltecal/backend/internal/pkg/schedule"
)

// CalendarService expands semester schedules into dated occurrence lists
type CalendarService struct {
	courseRepo      *repositories.CourseRepository
	semesterService *SemesterService
	logger          zerolog.Logger
}

// NewCalendarService creates a new CalendarService
func NewCalendarService(
	courseRepo *repositories.CourseRepository,
	semesterService *SemesterService,
	logger zerolog.Logger,
) *CalendarService {
	return &CalendarService{
		courseRepo:      courseRepo,
		semesterService: semesterService,
		logger:          logger,
	}
}

// GetView expands the semester's slots over the window selected by view and
// date: the date's day, its ISO week, or its calendar month.
func (s *CalendarService) GetView(ctx context.Context, userID, semesterID int64, view dto.CalendarView, dateStr string) (*dto.CalendarResponse, error) {
	semester, err := s.semesterService.Get(ctx, userID, semesterID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if dateStr != "" {
		date, err = helpers.ParseDate(dateStr, nil)
		if err != nil {
			return nil, apperrors.NewValidationError("date must be a valid YYYY-MM-DD date")
		}
	}

	var rangeStart, rangeEnd time.Time
	switch view {
	case dto.CalendarViewDay:
		rangeStart, rangeEnd = schedule.DayWindow(date)
	case dto.CalendarViewWeek:
		rangeStart, rangeEnd = schedule.WeekWindow(date)
	case dto.CalendarViewMonth:
		rangeStart, rangeEnd = schedule.MonthWindow(date)
	default:
		return nil, apperrors.NewValidationError("view must be day, week or month")
	}

	courses, err := s.courseRepo.GetAllBySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	occurrences, err := schedule.ExpandCourses(courses, schedule.ExpandConfig{
		SemesterStart: semester.StartDate,
		SemesterEnd:   semester.EndDate,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CalendarResponse{
		View:        view,
		RangeStart:  rangeStart,
		RangeEnd:    rangeEnd,
		Occurrences: occurrences,
	}, nil
}
