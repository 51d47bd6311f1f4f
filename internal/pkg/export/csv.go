package export

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/eltecal/backend/internal/app/models"
)

// csvRow is the flat per-course record written to CSV exports, using the
// same column names as the Neptun workbook.
type csvRow struct {
	SubjectCode string `csv:"Tárgy kódja"`
	SubjectName string `csv:"Tárgy neve"`
	ClassCode   string `csv:"Kurzus kódja"`
	CourseType  string `csv:"Kurzus típusa"`
	WeeklyHours int    `csv:"Óraszám"`
	Schedule    string `csv:"Órarend infó"`
	Instructors string `csv:"Oktatók"`
}

// BuildCSV renders the semester schedule as CSV with one row per course.
func BuildCSV(semester *models.Semester, courses []*models.Course) ([]byte, error) {
	rows := make([]*csvRow, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, &csvRow{
			SubjectCode: course.Code,
			SubjectName: course.Name,
			ClassCode:   course.ClassCode,
			CourseType:  courseTypeLabel(course.Type),
			WeeklyHours: course.WeeklyHours,
			Schedule:    formatSchedule(course),
			Instructors: strings.Join(course.Instructors, "; "),
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("error serializing csv: %w", err)
	}

	return out, nil
}
