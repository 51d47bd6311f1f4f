package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/eltecal/backend/internal/app/models"
)

// pdfEntry is one timetable line in the weekly PDF layout.
type pdfEntry struct {
	slot   *models.ScheduleSlot
	course *models.Course
}

// BuildPDF renders the semester schedule as a weekly timetable grouped by
// day. Text runs through the cp1250 translator so Hungarian letters render
// with the core fonts.
func BuildPDF(semester *models.Semester, courses []*models.Course) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.SetTitle(tr(semester.Name+" órarend"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Órarend — %s", semester.Name)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s – %s",
		semester.StartDate.Format("2006-01-02"), semester.EndDate.Format("2006-01-02"))),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	byDay := groupByDay(courses)

	for weekday := 1; weekday <= 7; weekday++ {
		entries := byDay[weekday]
		if len(entries) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, tr(dayNames[weekday]), "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, e := range entries {
			label := fmt.Sprintf("%s-%s", e.slot.StartTime, e.slot.EndTime)
			pdf.CellFormat(30, 7, label, "1", 0, "C", false, 0, "")
			pdf.CellFormat(95, 7, tr(fmt.Sprintf("%s (%s)", e.course.Name, e.course.Code)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(65, 7, tr(e.slot.Location), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error serializing pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func groupByDay(courses []*models.Course) map[int][]pdfEntry {
	byDay := make(map[int][]pdfEntry)
	for _, course := range courses {
		for _, slot := range course.Slots {
			byDay[slot.Weekday] = append(byDay[slot.Weekday], pdfEntry{slot: slot, course: course})
		}
	}

	for _, entries := range byDay {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].slot.StartTime != entries[j].slot.StartTime {
				return entries[i].slot.StartTime < entries[j].slot.StartTime
			}
			return entries[i].course.Code < entries[j].course.Code
		})
	}

	return byDay
}
