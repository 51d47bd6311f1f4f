package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/services"
	"github.com/eltecal/backend/internal/middleware"
)

// SemesterController handles semester operations
type SemesterController struct {
	semesterService *services.SemesterService
	logger          zerolog.Logger
}

// NewSemesterController creates a new SemesterController
func NewSemesterController(semesterService *services.SemesterService, logger zerolog.Logger) *SemesterController {
	return &SemesterController{
		semesterService: semesterService,
		logger:          logger,
	}
}

// List returns the user's semesters
// @Summary List semesters
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Semester}
// @Router /semesters [get]
func (c *SemesterController) List(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	semesters, err := c.semesterService.GetAll(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semesters))
}

// Create creates a semester
// @Summary Create a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSemesterRequest true "Semester data"
// @Success 201 {object} dto.APIResponse{data=models.Semester}
// @Failure 409 {object} dto.ErrorResponse "Semester name already used"
// @Router /semesters [post]
func (c *SemesterController) Create(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	semester, err := c.semesterService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(semester))
}

// Get returns one semester
// @Summary Get a semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=models.Semester}
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /semesters/{id} [get]
func (c *SemesterController) Get(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	semester, err := c.semesterService.Get(ctx.Request.Context(), userID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semester))
}

// Update updates a semester
// @Summary Update a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param request body dto.UpdateSemesterRequest true "Semester data"
// @Success 200 {object} dto.APIResponse{data=models.Semester}
// @Router /semesters/{id} [put]
func (c *SemesterController) Update(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	semester, err := c.semesterService.Update(ctx.Request.Context(), userID, semesterID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semester))
}

// Delete deletes a semester
// @Summary Delete a semester
// @Description Deletes a semester together with its courses and import history
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /semesters/{id} [delete]
func (c *SemesterController) Delete(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.semesterService.Delete(ctx.Request.Context(), userID, semesterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Semester deleted"}))
}

// SetCurrent marks the semester as current
// @Summary Set the current semester
// @Description Marks this semester current and clears the flag on the user's others
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=models.Semester}
// @Router /semesters/{id}/current [post]
func (c *SemesterController) SetCurrent(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	semester, err := c.semesterService.SetCurrent(ctx.Request.Context(), userID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(semester))
}
