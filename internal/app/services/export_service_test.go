package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eltecal/backend/internal/pkg/export"
)

func TestExportFileName(t *testing.T) {
	tests := []struct {
		semesterName string
		format       export.Format
		want         string
	}{
		{"2024/25/1", export.FormatICS, "schedule-2024-25-1.ics"},
		{"2024/25/1", export.FormatXLSX, "schedule-2024-25-1.xlsx"},
		{"Őszi félév", export.FormatCSV, "schedule-szi-f-l-v.csv"},
		{"///", export.FormatPDF, "schedule-semester.pdf"},
		{"", export.FormatICS, "schedule-semester.ics"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exportFileName(tt.semesterName, tt.format), "name %q", tt.semesterName)
	}
}
