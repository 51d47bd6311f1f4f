package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/repositories"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/filestorage"
	"github.com/eltecal/backend/internal/pkg/neptun"
)

// ImportService runs the spreadsheet import pipeline: parse the workbook,
// swap the semester's course set, archive the file and record the outcome.
type ImportService struct {
	courseRepo          *repositories.CourseRepository
	importRepo          *repositories.ImportRepository
	semesterService     *SemesterService
	notificationService *NotificationService
	fileStorage         filestorage.FileStorage
	logger              zerolog.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	courseRepo *repositories.CourseRepository,
	importRepo *repositories.ImportRepository,
	semesterService *SemesterService,
	notificationService *NotificationService,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) *ImportService {
	return &ImportService{
		courseRepo:          courseRepo,
		importRepo:          importRepo,
		semesterService:     semesterService,
		notificationService: notificationService,
		fileStorage:         fileStorage,
		logger:              logger,
	}
}

// ImportWorkbook imports a Neptun .xlsx export into the semester. The
// semester's existing courses are replaced by the parsed set in one
// transaction; rows the parser could not use come back as warnings.
func (s *ImportService) ImportWorkbook(ctx context.Context, userID, semesterID int64, fileHeader *multipart.FileHeader) (*dto.ImportResponse, error) {
	semester, err := s.semesterService.Get(ctx, userID, semesterID)
	if err != nil {
		return nil, err
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		return nil, apperrors.ErrUnsupportedFileType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	result, parseErr := neptun.Parse(file)
	file.Close()
	if parseErr != nil {
		return nil, parseErr
	}

	if err := s.courseRepo.ReplaceSemesterCourses(ctx, semesterID, result.Courses); err != nil {
		return nil, fmt.Errorf("error replacing semester courses: %w", err)
	}

	// Archive the workbook; a storage failure does not undo the import.
	subPath := filepath.Join("excel-imports", fmt.Sprintf("%d", userID), fmt.Sprintf("%d", semesterID))
	storedPath, err := s.fileStorage.SaveFileWithPath(fileHeader, subPath)
	if err != nil {
		s.logger.Error().Err(err).Int64("semesterID", semesterID).Msg("Failed to archive imported workbook")
		storedPath = ""
	}

	record := &models.ImportRecord{
		UserID:      userID,
		SemesterID:  semesterID,
		FileName:    fileHeader.Filename,
		FilePath:    storedPath,
		CourseCount: len(result.Courses),
		SlotCount:   result.SlotCount(),
		Warnings:    result.Warnings,
	}

	if err := s.importRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("error recording import: %w", err)
	}

	s.notifyCompletion(ctx, userID, semester.Name, record)

	s.logger.Info().
		Int64("userID", userID).
		Int64("semesterID", semesterID).
		Int("courses", record.CourseCount).
		Int("slots", record.SlotCount).
		Int("warnings", len(record.Warnings)).
		Msg("Spreadsheet import completed")

	return &dto.ImportResponse{
		ImportID:    record.ID,
		FileName:    record.FileName,
		CourseCount: record.CourseCount,
		SlotCount:   record.SlotCount,
		Warnings:    record.Warnings,
	}, nil
}

// GetHistory lists the semester's import records, newest first
func (s *ImportService) GetHistory(ctx context.Context, userID, semesterID int64) ([]*models.ImportRecord, error) {
	if _, err := s.semesterService.Get(ctx, userID, semesterID); err != nil {
		return nil, err
	}
	return s.importRepo.GetAllBySemester(ctx, semesterID)
}

func (s *ImportService) notifyCompletion(ctx context.Context, userID int64, semesterName string, record *models.ImportRecord) {
	message := fmt.Sprintf("Imported %d courses (%d schedule slots) into %s from %s.",
		record.CourseCount, record.SlotCount, semesterName, record.FileName)
	if n := len(record.Warnings); n > 0 {
		message += fmt.Sprintf(" %d rows were skipped.", n)
	}

	if err := s.notificationService.Notify(ctx, userID, "Schedule import completed", message); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Could not create import notification")
	}
}
