package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eltecal/backend/internal/app/controllers"
	"github.com/eltecal/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	semesterController *controllers.SemesterController,
	courseController *controllers.CourseController,
	importController *controllers.ImportController,
	calendarController *controllers.CalendarController,
	exportController *controllers.ExportController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", authController.GetProfile)
		authenticated.PUT("/profile", authController.UpdateProfile)

		semesters := authenticated.Group("/semesters")
		{
			semesters.GET("", semesterController.List)
			semesters.POST("", semesterController.Create)
			semesters.GET("/:id", semesterController.Get)
			semesters.PUT("/:id", semesterController.Update)
			semesters.DELETE("/:id", semesterController.Delete)
			semesters.POST("/:id/current", semesterController.SetCurrent)

			// Courses within a semester
			semesters.GET("/:id/courses", courseController.List)
			semesters.POST("/:id/courses", courseController.Create)
			semesters.GET("/:id/courses/:courseId", courseController.Get)
			semesters.PUT("/:id/courses/:courseId", courseController.Update)
			semesters.DELETE("/:id/courses/:courseId", courseController.Delete)

			// Spreadsheet import
			semesters.POST("/:id/import", importController.Import)
			semesters.GET("/:id/imports", importController.History)

			// Calendar views and exports
			semesters.GET("/:id/calendar", calendarController.GetView)
			semesters.GET("/:id/export", exportController.Export)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.POST("/read-all", notificationController.MarkAllRead)
			notifications.POST("/:id/read", notificationController.MarkRead)
			notifications.DELETE("/:id", notificationController.Delete)
		}
	}
}
