package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/services"
	"github.com/eltecal/backend/internal/middleware"
)

// CourseController handles course operations within a semester
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// List returns the semester's courses with their slots
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /semesters/{id}/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetAllBySemester(ctx.Request.Context(), userID, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// Create adds a course to the semester
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Router /semesters/{id}/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), userID, semesterID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// Get returns one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /semesters/{id}/courses/{courseId} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.Get(ctx.Request.Context(), userID, semesterID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// Update replaces a course's fields and slot set
// @Summary Update a course
// @Description Updates the course; the submitted slot set replaces the stored one wholesale
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param courseId path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course data"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Router /semesters/{id}/courses/{courseId} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), userID, semesterID, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// Delete removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /semesters/{id}/courses/{courseId} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), userID, semesterID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}))
}
