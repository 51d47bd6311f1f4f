package neptun

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/pkg/apperrors"
)

// buildWorkbook writes the given rows into an in-memory xlsx workbook.
func buildWorkbook(t *testing.T, rows [][]interface{}) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func headerRow() []interface{} {
	return []interface{}{
		ColSubjectCode, ColSubjectName, ColClassCode, ColCourseType,
		ColWeeklyHours, ColSchedule, ColInstructors,
	}
}

func TestParseMapsRowsToCourses(t *testing.T) {
	file := buildWorkbook(t, [][]interface{}{
		headerRow(),
		{"IP-18KVSZAMG", "Számítógépes alapismeretek", "1", "gyakorlat", "2", "SZE:18:00-19:30(Déli Tömb 2-502)", "Kiss Péter"},
		{"IP-18AN1E", "Analízis 1", "1", "elmélet (előadás)", "3", "H:8:00-9:30(Északi Tömb 0.81); CS:10:00-11:30", "Nagy Anna; Szabó Gábor"},
	})

	result, err := Parse(file)
	require.NoError(t, err)
	require.Len(t, result.Courses, 2)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 3, result.SlotCount())

	first := result.Courses[0]
	assert.Equal(t, "IP-18KVSZAMG", first.Code)
	assert.Equal(t, "Számítógépes alapismeretek", first.Name)
	assert.Equal(t, "1", first.ClassCode)
	assert.Equal(t, models.CourseTypePractice, first.Type)
	assert.Equal(t, 2, first.WeeklyHours)
	assert.Equal(t, []string{"Kiss Péter"}, first.Instructors)
	require.Len(t, first.Slots, 1)
	assert.Equal(t, 3, first.Slots[0].Weekday)
	assert.Equal(t, "18:00", first.Slots[0].StartTime)
	assert.Equal(t, "19:30", first.Slots[0].EndTime)
	assert.Equal(t, "Déli Tömb 2-502", first.Slots[0].Location)

	second := result.Courses[1]
	assert.Equal(t, models.CourseTypeLecture, second.Type)
	assert.Equal(t, []string{"Nagy Anna", "Szabó Gábor"}, second.Instructors)
	require.Len(t, second.Slots, 2)
	// Single-digit hours come back zero-padded.
	assert.Equal(t, 1, second.Slots[0].Weekday)
	assert.Equal(t, "08:00", second.Slots[0].StartTime)
	assert.Equal(t, 4, second.Slots[1].Weekday)
	assert.Equal(t, "", second.Slots[1].Location)
}

func TestParseFindsHeaderBelowPreamble(t *testing.T) {
	file := buildWorkbook(t, [][]interface{}{
		{"Órarend export"},
		{},
		headerRow(),
		{"IP-18MAT1", "Matematika", "", "", "", "K:12:00-13:30", ""},
	})

	result, err := Parse(file)
	require.NoError(t, err)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "IP-18MAT1", result.Courses[0].Code)
}

func TestParseMissingRequiredColumn(t *testing.T) {
	file := buildWorkbook(t, [][]interface{}{
		{ColSubjectCode, ColSubjectName, ColInstructors},
		{"IP-18MAT1", "Matematika", "Nagy Anna"},
	})

	_, err := Parse(file)
	assert.ErrorIs(t, err, apperrors.ErrMissingRequiredColumn)
}

func TestParseSkipsBlankRowsSilently(t *testing.T) {
	file := buildWorkbook(t, [][]interface{}{
		headerRow(),
		{"IP-18MAT1", "Matematika", "", "", "", "K:12:00-13:30", ""},
		{},
		{"", "", "", "", "", "", ""},
		{"IP-18FIZ1", "Fizika", "", "", "", "P:14:00-15:30", ""},
	})

	result, err := Parse(file)
	require.NoError(t, err)
	assert.Len(t, result.Courses, 2)
	assert.Empty(t, result.Warnings)
}

func TestParseWarnsOnBrokenRows(t *testing.T) {
	file := buildWorkbook(t, [][]interface{}{
		headerRow(),
		{"", "Névtelen tárgy", "", "", "", "K:12:00-13:30", ""},
		{"IP-18MAT1", "Matematika", "", "", "", "X:12:00-13:30; K:12:00-13:30", ""},
		{"IP-18FIZ1", "Fizika", "", "", "", "K:14:00-13:30", ""},
	})

	result, err := Parse(file)
	require.NoError(t, err)

	// The row with no subject code is dropped; the other two survive with
	// only their bad schedule entries skipped.
	require.Len(t, result.Courses, 2)
	assert.Len(t, result.Courses[0].Slots, 1)
	assert.Empty(t, result.Courses[1].Slots)

	require.Len(t, result.Warnings, 3)
	assert.Contains(t, result.Warnings[0], "row 2")
	assert.Contains(t, result.Warnings[1], "unknown day token")
	assert.Contains(t, result.Warnings[2], "end time not after start time")
}

func TestParseRejectsNonWorkbook(t *testing.T) {
	_, err := Parse(strings.NewReader("this is not an xlsx file"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		entry   string
		weekday int
		start   string
		end     string
		loc     string
		wantErr string
	}{
		{entry: "H:8:00-9:30", weekday: 1, start: "08:00", end: "09:30"},
		{entry: "SZE:18:00-19:30(Déli Tömb 2-502 (QGYLAB))", weekday: 3, start: "18:00", end: "19:30", loc: "Déli Tömb 2-502 (QGYLAB)"},
		{entry: "SZO:10:00-11:30", weekday: 6, start: "10:00", end: "11:30"},
		{entry: "SZ:10:00-11:30", weekday: 6, start: "10:00", end: "11:30"},
		{entry: "V:10:00-11:30", weekday: 7, start: "10:00", end: "11:30"},
		{entry: "X:10:00-11:30", wantErr: "unknown day token"},
		{entry: "hétfő 10-12", wantErr: "unrecognized schedule entry"},
		{entry: "K:25:00-26:00", wantErr: "bad start time"},
		{entry: "K:12:00-12:00", wantErr: "end time not after start time"},
		{entry: "K:12:00-10:00", wantErr: "end time not after start time"},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			slot, err := parseSlot(tt.entry)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.weekday, slot.Weekday)
			assert.Equal(t, tt.start, slot.StartTime)
			assert.Equal(t, tt.end, slot.EndTime)
			assert.Equal(t, tt.loc, slot.Location)
		})
	}
}

func TestMapCourseType(t *testing.T) {
	tests := []struct {
		value string
		want  models.CourseType
	}{
		{"elmélet", models.CourseTypeLecture},
		{"Elmélet (előadás)", models.CourseTypeLecture},
		{"előadás", models.CourseTypeLecture},
		{"gyakorlat", models.CourseTypePractice},
		{"Gyakorlat", models.CourseTypePractice},
		{"konzultáció", models.CourseTypeConsultation},
		{"labor", models.CourseTypeOther},
		{"", models.CourseTypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCourseType(tt.value), "value %q", tt.value)
	}
}

func TestParseWeeklyHours(t *testing.T) {
	assert.Equal(t, 2, parseWeeklyHours("2"))
	assert.Equal(t, 3, parseWeeklyHours("3 óra"))
	assert.Equal(t, 0, parseWeeklyHours(""))
	assert.Equal(t, 0, parseWeeklyHours("sok"))
	assert.Equal(t, 0, parseWeeklyHours("-1"))
}

func TestParseInstructors(t *testing.T) {
	assert.Equal(t, []string{"Nagy Anna", "Szabó Gábor"}, parseInstructors("Nagy Anna; Szabó Gábor"))
	assert.Equal(t, []string{"Nagy Anna", "Szabó Gábor"}, parseInstructors("Nagy Anna, Szabó Gábor"))
	assert.Empty(t, parseInstructors(""))
	assert.Empty(t, parseInstructors(" ; , "))
}

func TestSlotCount(t *testing.T) {
	result := &Result{
		Courses: []*models.Course{
			{Slots: []*models.ScheduleSlot{{}, {}}},
			{Slots: []*models.ScheduleSlot{{}}},
			{},
		},
	}
	assert.Equal(t, 3, result.SlotCount())
}

func TestParseLargeWorkbook(t *testing.T) {
	rows := [][]interface{}{headerRow()}
	for i := 0; i < 40; i++ {
		rows = append(rows, []interface{}{
			fmt.Sprintf("IP-18X%02d", i), fmt.Sprintf("Tárgy %d", i), "1", "gyakorlat", "2",
			"K:10:00-11:30(1-104)", "Kiss Péter",
		})
	}

	result, err := Parse(buildWorkbook(t, rows))
	require.NoError(t, err)
	assert.Len(t, result.Courses, 40)
	assert.Equal(t, 40, result.SlotCount())
	assert.Empty(t, result.Warnings)
}
