package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/services"
	"github.com/eltecal/backend/internal/middleware"
)

// ImportController handles spreadsheet imports
type ImportController struct {
	importService *services.ImportService
	maxUploadSize int64
	logger        zerolog.Logger
}

// NewImportController creates a new ImportController. maxUploadSize is in bytes.
func NewImportController(importService *services.ImportService, maxUploadSize int64, logger zerolog.Logger) *ImportController {
	return &ImportController{
		importService: importService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Import uploads and imports a Neptun workbook
// @Summary Import a Neptun schedule export
// @Description Parses the uploaded .xlsx and replaces the semester's courses with the parsed set. Skipped rows come back as warnings.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param file formData file true "Neptun .xlsx export"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResponse}
// @Failure 415 {object} dto.ErrorResponse "Not an .xlsx file"
// @Failure 422 {object} dto.ErrorResponse "Required column missing"
// @Router /semesters/{id}/import [post]
func (c *ImportController) Import(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file upload").
			WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if fileHeader.Size > c.maxUploadSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Uploaded file is too large")
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.importService.ImportWorkbook(ctx.Request.Context(), userID, semesterID, fileHeader)
	if err != nil {
		c.logger.Warn().Err(err).Int64("semesterID", semesterID).Msg("Import failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// History lists the semester's import records
// @Summary List import history
// @Tags import
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ImportRecord}
// @Router /semesters/{id}/imports [get]
func (c *ImportController) History(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.importService.GetHistory(ctx.Request.Context(), userID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}
