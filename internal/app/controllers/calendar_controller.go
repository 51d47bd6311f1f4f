package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models/dto"
	"github.com/eltecal/backend/internal/app/services"
	"github.com/eltecal/backend/internal/middleware"
)

// CalendarController serves expanded calendar views
type CalendarController struct {
	calendarService *services.CalendarService
	logger          zerolog.Logger
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(calendarService *services.CalendarService, logger zerolog.Logger) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
		logger:          logger,
	}
}

// GetView expands the semester schedule over a day/week/month window
// @Summary Get calendar occurrences
// @Description Expands the semester's weekly slots into dated occurrences for the day, ISO week or month containing the given date
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Param view query string true "View" Enums(day, week, month)
// @Param date query string false "Anchor date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} dto.APIResponse{data=dto.CalendarResponse}
// @Router /semesters/{id}/calendar [get]
func (c *CalendarController) GetView(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	semesterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	view := dto.CalendarView(ctx.DefaultQuery("view", string(dto.CalendarViewWeek)))
	date := ctx.Query("date")

	resp, err := c.calendarService.GetView(ctx.Request.Context(), userID, semesterID, view, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
