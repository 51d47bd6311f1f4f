package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/repositories"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/export"
)

// ExportFile is a rendered schedule ready to be served for download.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService renders semester schedules into downloadable files
type ExportService struct {
	courseRepo      *repositories.CourseRepository
	semesterService *SemesterService
	logger          zerolog.Logger
}

// NewExportService creates a new ExportService
func NewExportService(
	courseRepo *repositories.CourseRepository,
	semesterService *SemesterService,
	logger zerolog.Logger,
) *ExportService {
	return &ExportService{
		courseRepo:      courseRepo,
		semesterService: semesterService,
		logger:          logger,
	}
}

// Export renders the semester schedule in the requested format
func (s *ExportService) Export(ctx context.Context, userID, semesterID int64, formatStr string) (*ExportFile, error) {
	format, ok := export.ParseFormat(formatStr)
	if !ok {
		return nil, apperrors.ErrUnsupportedExportFormat
	}

	semester, err := s.semesterService.Get(ctx, userID, semesterID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetAllBySemester(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case export.FormatICS:
		data, err = export.BuildICS(semester, courses, nil)
	case export.FormatXLSX:
		data, err = export.BuildXLSX(semester, courses)
	case export.FormatCSV:
		data, err = export.BuildCSV(semester, courses)
	case export.FormatPDF:
		data, err = export.BuildPDF(semester, courses)
	}
	if err != nil {
		return nil, fmt.Errorf("error rendering %s export: %w", format, err)
	}

	s.logger.Info().
		Int64("userID", userID).
		Int64("semesterID", semesterID).
		Str("format", string(format)).
		Msg("Schedule exported")

	return &ExportFile{
		FileName:    exportFileName(semester.Name, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// exportFileName derives a safe download name from the semester name,
// e.g. "2024/25/1" becomes "schedule-2024-25-1.ics".
func exportFileName(semesterName string, format export.Format) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, semesterName)
	safe = strings.Trim(safe, "-")
	if safe == "" {
		safe = "semester"
	}
	return fmt.Sprintf("schedule-%s.%s", safe, format)
}
