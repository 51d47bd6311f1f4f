package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/neptun"
)

// xlsxHeaders mirrors the Neptun import columns so an exported workbook can
// be re-imported unchanged.
var xlsxHeaders = []string{
	neptun.ColSubjectCode,
	neptun.ColSubjectName,
	neptun.ColClassCode,
	neptun.ColCourseType,
	neptun.ColWeeklyHours,
	neptun.ColSchedule,
	neptun.ColInstructors,
}

// BuildXLSX renders the semester schedule as an xlsx workbook with one row
// per course.
func BuildXLSX(semester *models.Semester, courses []*models.Course) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Órarend"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	for i, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("error writing header: %w", err)
		}
	}

	for rowIdx, course := range courses {
		values := []interface{}{
			course.Code,
			course.Name,
			course.ClassCode,
			courseTypeLabel(course.Type),
			course.WeeklyHours,
			formatSchedule(course),
			strings.Join(course.Instructors, "; "),
		}

		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("error writing row %d: %w", rowIdx+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error serializing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
