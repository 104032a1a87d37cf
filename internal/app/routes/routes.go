package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseportfolio/internal/app/controllers"
	"github.com/yigit/courseportfolio/internal/app/models/dto"
	"github.com/yigit/courseportfolio/internal/middleware"
	"github.com/yigit/courseportfolio/internal/pkg/auth"
)

// Pinger reports whether the backing database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
	db Pinger,
) {
	v1 := router.Group("/api/v1")

	// --- Public course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("/lookup", courseController.GetCourseByAttributes)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("/payload", courseController.GeneratePayload)
	}

	// --- Editor-only course routes ---
	coursesProtected := v1.Group("/courses")
	coursesProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleEditor))
	{
		coursesProtected.POST("", courseController.CreateCourse)
		coursesProtected.PUT("/:id", courseController.UpdateCourse)
		coursesProtected.DELETE("", courseController.DeleteCoursesByAttributes)
		coursesProtected.DELETE("/:id", courseController.DeleteCourse)
	}

	v1.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unavailable").WithDetails(err.Error())
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
