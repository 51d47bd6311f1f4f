package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/services"
	"github.com/eltecal/backend/internal/middleware"
)

// ExportController serves schedule downloads
type ExportController struct {
	exportService *services.ExportService
	logger        zerolog.Logger
}

// NewExportController creates a new ExportController
func NewExportController(exportService *services.ExportService, logger zerolog.Logger) *ExportController {
	return &ExportController{
		exportService: exportService,
		logger:        logger,
	}
}

// Export downloads the semester schedule in the requested format
// @Summary Export the semester schedule
// @Description Renders the schedule as an ics calendar, xlsx workbook, csv table or pdf timetable
// @Tags export
// @Produce application/octet-stream
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param format query string true "Format" Enums(ics, xlsx, csv, pdf)
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Router /semesters/{id}/export [get]
func (c *ExportController) Export(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := c.exportService.Export(ctx.Request.Context(), userID, semesterID, ctx.Query("format"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}
