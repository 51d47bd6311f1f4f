package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/repositories"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/helpers"
)

// CourseService handles course operations
type CourseService struct {
	courseRepo      *repositories.CourseRepository
	semesterService *SemesterService
	logger          zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	semesterService *SemesterService,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:      courseRepo,
		semesterService: semesterService,
		logger:          logger,
	}
}

// GetAllBySemester lists the courses of a semester owned by the user
func (s *CourseService) GetAllBySemester(ctx context.Context, userID, semesterID int64) ([]*models.Course, error) {
	if _, err := s.semesterService.Get(ctx, userID, semesterID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetAllBySemester(ctx, semesterID)
}

// Get retrieves one course, enforcing semester ownership
func (s *CourseService) Get(ctx context.Context, userID, semesterID, courseID int64) (*models.Course, error) {
	if _, err := s.semesterService.Get(ctx, userID, semesterID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.SemesterID != semesterID {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// Create adds a course with its slots to a semester
func (s *CourseService) Create(ctx context.Context, userID, semesterID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.semesterService.Get(ctx, userID, semesterID); err != nil {
		return nil, err
	}

	course, err := s.buildCourse(semesterID, req)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("semesterID", semesterID).Str("code", course.Code).Msg("Course created")
	return course, nil
}

// Update replaces a course's fields and slot set
func (s *CourseService) Update(ctx context.Context, userID, semesterID, courseID int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	existing, err := s.Get(ctx, userID, semesterID, courseID)
	if err != nil {
		return nil, err
	}

	course, err := s.buildCourse(semesterID, req)
	if err != nil {
		return nil, err
	}
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course and its slots
func (s *CourseService) Delete(ctx context.Context, userID, semesterID, courseID int64) error {
	if _, err := s.Get(ctx, userID, semesterID, courseID); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, courseID)
}

func (s *CourseService) buildCourse(semesterID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationError("course code and name are required")
	}

	courseType := models.CourseType(strings.ToUpper(strings.TrimSpace(req.Type)))
	switch courseType {
	case models.CourseTypeLecture, models.CourseTypePractice, models.CourseTypeConsultation, models.CourseTypeOther:
	case "":
		courseType = models.CourseTypeOther
	default:
		return nil, apperrors.NewValidationError("unknown course type")
	}

	if req.WeeklyHours < 0 {
		return nil, apperrors.NewValidationError("weeklyHours cannot be negative")
	}

	slots := make([]*models.ScheduleSlot, 0, len(req.Slots))
	for _, sr := range req.Slots {
		slot, err := buildSlot(sr)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	instructors := req.Instructors
	if instructors == nil {
		instructors = []string{}
	}

	return &models.Course{
		SemesterID:  semesterID,
		Code:        code,
		Name:        name,
		ClassCode:   strings.TrimSpace(req.ClassCode),
		Type:        courseType,
		WeeklyHours: req.WeeklyHours,
		Instructors: instructors,
		Slots:       slots,
	}, nil
}

func buildSlot(req dto.ScheduleSlotRequest) (*models.ScheduleSlot, error) {
	if req.Weekday < 1 || req.Weekday > 7 {
		return nil, apperrors.NewValidationError("slot weekday must be between 1 and 7")
	}

	startMin, err := helpers.ParseClock(req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("slot startTime must be HH:MM")
	}
	endMin, err := helpers.ParseClock(req.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("slot endTime must be HH:MM")
	}
	if endMin <= startMin {
		return nil, apperrors.NewValidationError("slot endTime must be after startTime")
	}

	return &models.ScheduleSlot{
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  strings.TrimSpace(req.Location),
	}, nil
}
