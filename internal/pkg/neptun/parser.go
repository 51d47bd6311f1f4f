// Package neptun parses the course schedule spreadsheet students download
// from the Neptun study administration system.
package neptun

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/apperrors"
	"github.com/eltecal/backend/internal/pkg/helpers"
)

// Column headers as they appear in the Neptun export.
const (
	ColSubjectCode = "Tárgy kódja"
	ColSubjectName = "Tárgy neve"
	ColClassCode   = "Kurzus kódja"
	ColCourseType  = "Kurzus típusa"
	ColWeeklyHours = "Óraszám"
	ColSchedule    = "Órarend infó"
	ColInstructors = "Oktatók"
)

// requiredColumns must all be present in the header row for the file to be
// accepted. The remaining columns are optional and default to empty values.
var requiredColumns = []string{ColSubjectCode, ColSubjectName, ColSchedule}

// weekdayTokens maps Neptun day abbreviations to ISO weekday numbers.
var weekdayTokens = map[string]int{
	"H":   1,
	"K":   2,
	"SZE": 3,
	"CS":  4,
	"P":   5,
	"SZO": 6,
	"SZ":  6,
	"V":   7,
}

// slotPattern matches one schedule entry, e.g. "SZE:18:00-19:30(Déli Tömb 2-502)".
var slotPattern = regexp.MustCompile(`^([A-ZÉÁÖŐÜŰ]+):(\d{1,2}:\d{2})-(\d{1,2}:\d{2})\s*(?:\((.*)\))?$`)

// headerScanLimit bounds how deep into the sheet we look for the header row.
const headerScanLimit = 10

// Result is the outcome of parsing one workbook.
type Result struct {
	Courses []*models.Course
	// Warnings describe rows or schedule entries that were skipped.
	Warnings []string
}

// SlotCount returns the total number of schedule slots across all courses.
func (r *Result) SlotCount() int {
	n := 0
	for _, c := range r.Courses {
		n += len(c.Slots)
	}
	return n
}

// Parse reads a Neptun .xlsx export and maps its rows to courses with
// schedule slots. Rows with missing required cells or unparseable schedule
// text are skipped and reported as warnings rather than failing the import.
func Parse(file io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewValidationError("file is not a readable xlsx workbook")
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, apperrors.ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyWorkbook
	}

	headerIdx, columns, err := locateHeader(rows)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i := headerIdx + 1; i < len(rows); i++ {
		rowNum := i + 1
		course, warnings, ok := parseRow(rows[i], columns, rowNum)
		result.Warnings = append(result.Warnings, warnings...)
		if ok {
			result.Courses = append(result.Courses, course)
		}
	}

	return result, nil
}

// locateHeader scans the first rows for one containing every required column
// and returns its index plus a header-name to cell-index map.
func locateHeader(rows [][]string) (int, map[string]int, error) {
	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		columns := make(map[string]int)
		for j, cell := range rows[i] {
			columns[strings.TrimSpace(cell)] = j
		}

		missing := ""
		for _, col := range requiredColumns {
			if _, ok := columns[col]; !ok {
				missing = col
				break
			}
		}
		if missing == "" {
			return i, columns, nil
		}
	}

	return 0, nil, apperrors.ErrMissingRequiredColumn
}

func cellAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseRow(row []string, columns map[string]int, rowNum int) (*models.Course, []string, bool) {
	code := cellAt(row, columns, ColSubjectCode)
	name := cellAt(row, columns, ColSubjectName)
	schedule := cellAt(row, columns, ColSchedule)

	// Neptun pads exports with blank separator rows.
	if code == "" && name == "" && schedule == "" {
		return nil, nil, false
	}

	if code == "" || name == "" {
		return nil, []string{fmt.Sprintf("row %d: missing subject code or name, row skipped", rowNum)}, false
	}

	course := &models.Course{
		Code:        code,
		Name:        name,
		ClassCode:   cellAt(row, columns, ColClassCode),
		Type:        MapCourseType(cellAt(row, columns, ColCourseType)),
		WeeklyHours: parseWeeklyHours(cellAt(row, columns, ColWeeklyHours)),
		Instructors: parseInstructors(cellAt(row, columns, ColInstructors)),
	}

	slots, warnings := parseSchedule(schedule, rowNum)
	course.Slots = slots
	return course, warnings, true
}

// MapCourseType classifies the Neptun course type string.
func MapCourseType(value string) models.CourseType {
	switch v := strings.ToLower(strings.TrimSpace(value)); {
	case strings.Contains(v, "elmélet"), strings.Contains(v, "előadás"):
		return models.CourseTypeLecture
	case strings.Contains(v, "gyakorlat"):
		return models.CourseTypePractice
	case strings.Contains(v, "konzultáció"):
		return models.CourseTypeConsultation
	default:
		return models.CourseTypeOther
	}
}

func parseWeeklyHours(value string) int {
	// The cell is usually a bare number but sometimes reads "2 óra".
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseInstructors(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ','
	})

	instructors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			instructors = append(instructors, p)
		}
	}
	return instructors
}

// parseSchedule splits the "Órarend infó" cell into schedule slots. Entries
// are ";"-separated, each "DAY:HH:MM-HH:MM(Location)" with the location part
// optional. Bad entries are reported as warnings and skipped.
func parseSchedule(value string, rowNum int) ([]*models.ScheduleSlot, []string) {
	var slots []*models.ScheduleSlot
	var warnings []string

	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		slot, err := parseSlot(entry)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		slots = append(slots, slot)
	}

	return slots, warnings
}

func parseSlot(entry string) (*models.ScheduleSlot, error) {
	m := slotPattern.FindStringSubmatch(entry)
	if m == nil {
		return nil, fmt.Errorf("unrecognized schedule entry %q", entry)
	}

	weekday, ok := weekdayTokens[m[1]]
	if !ok {
		return nil, fmt.Errorf("unknown day token %q in schedule entry %q", m[1], entry)
	}

	start, err := normalizeClock(m[2])
	if err != nil {
		return nil, fmt.Errorf("bad start time in schedule entry %q", entry)
	}
	end, err := normalizeClock(m[3])
	if err != nil {
		return nil, fmt.Errorf("bad end time in schedule entry %q", entry)
	}

	startMin, _ := helpers.ParseClock(start)
	endMin, _ := helpers.ParseClock(end)
	if endMin <= startMin {
		return nil, fmt.Errorf("end time not after start time in schedule entry %q", entry)
	}

	return &models.ScheduleSlot{
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Location:  strings.TrimSpace(m[4]),
	}, nil
}

// normalizeClock zero-pads single-digit hours so slot times are uniform "HH:MM".
func normalizeClock(value string) (string, error) {
	if len(value) == 4 {
		value = "0" + value
	}
	if _, err := helpers.ParseClock(value); err != nil {
		return "", err
	}
	return value, nil
}
