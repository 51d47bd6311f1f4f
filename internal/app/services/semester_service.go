package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/repositories"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/helpers"
)

// SemesterService handles semester operations
type SemesterService struct {
	semesterRepo *repositories.SemesterRepository
	logger       zerolog.Logger
}

// NewSemesterService creates a new SemesterService
func NewSemesterService(semesterRepo *repositories.SemesterRepository, logger zerolog.Logger) *SemesterService {
	return &SemesterService{
		semesterRepo: semesterRepo,
		logger:       logger,
	}
}

func (s *SemesterService) validateDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := helpers.ParseDate(startDate, nil)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("startDate must be a valid YYYY-MM-DD date")
	}
	end, err := helpers.ParseDate(endDate, nil)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("endDate must be a valid YYYY-MM-DD date")
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("startDate must be before endDate")
	}
	return start, end, nil
}

// Create creates a new semester for the user
func (s *SemesterService) Create(ctx context.Context, userID int64, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	start, end, err := s.validateDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	semester := &models.Semester{
		UserID:    userID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
	}

	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return nil, err
	}

	if req.IsCurrent {
		if err := s.semesterRepo.SetCurrent(ctx, userID, semester.ID); err != nil {
			return nil, fmt.Errorf("error marking semester current: %w", err)
		}
		semester.IsCurrent = true
	}

	s.logger.Info().Int64("userID", userID).Int64("semesterID", semester.ID).Str("name", name).Msg("Semester created")
	return semester, nil
}

// GetAll lists the user's semesters
func (s *SemesterService) GetAll(ctx context.Context, userID int64) ([]*models.Semester, error) {
	return s.semesterRepo.GetAllByUser(ctx, userID)
}

// Get retrieves one semester, enforcing ownership
func (s *SemesterService) Get(ctx context.Context, userID, semesterID int64) (*models.Semester, error) {
	semester, err := s.semesterRepo.GetByID(ctx, semesterID)
	if err != nil {
		return nil, err
	}
	if semester.UserID != userID {
		return nil, apperrors.ErrSemesterNotFound
	}
	return semester, nil
}

// Update updates a semester's name and dates
func (s *SemesterService) Update(ctx context.Context, userID, semesterID int64, req *dto.UpdateSemesterRequest) (*models.Semester, error) {
	semester, err := s.Get(ctx, userID, semesterID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	start, end, err := s.validateDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	semester.Name = name
	semester.StartDate = start
	semester.EndDate = end

	if err := s.semesterRepo.Update(ctx, semester); err != nil {
		return nil, err
	}

	return semester, nil
}

// Delete deletes a semester and, via cascade, its courses and imports
func (s *SemesterService) Delete(ctx context.Context, userID, semesterID int64) error {
	if _, err := s.Get(ctx, userID, semesterID); err != nil {
		return err
	}

	if err := s.semesterRepo.Delete(ctx, semesterID); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Int64("semesterID", semesterID).Msg("Semester deleted")
	return nil
}

// SetCurrent marks the semester as the user's current one
func (s *SemesterService) SetCurrent(ctx context.Context, userID, semesterID int64) (*models.Semester, error) {
	if err := s.semesterRepo.SetCurrent(ctx, userID, semesterID); err != nil {
		return nil, err
	}
	return s.semesterRepo.GetByID(ctx, semesterID)
}
