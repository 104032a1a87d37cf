package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseportfolio/internal/app/models/dto"
	"github.com/yigit/courseportfolio/internal/app/services"
	"github.com/yigit/courseportfolio/internal/middleware"
)

// CourseController handles course-related HTTP requests
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// parseCourseID reads the :id path parameter, answering 400 when it is not an integer
func parseCourseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.AbortWithValidationError(ctx, "Invalid course ID", err)
		return 0, false
	}
	return id, true
}

// GeneratePayload builds a course payload without touching storage
// @Summary Build a course payload
// @Description Parses department id and course number into the payload stored for a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course attributes"
// @Success 200 {object} dto.APIResponse{data=dto.CoursePayloadResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /courses/payload [post]
func (c *CourseController) GeneratePayload(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, "Invalid course data", err)
		return
	}

	payload, err := c.courseService.GenerateCoursePayload(req.DepartmentID.String(), req.CourseNumber.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromCoursePayload(payload), "Payload generated"))
}

// GetCourseByAttributes retrieves a course by department id and course number
// @Summary Look up a course by department and number
// @Tags courses
// @Produce json
// @Param departmentId query string true "Department ID"
// @Param courseNumber query string true "Course number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/lookup [get]
func (c *CourseController) GetCourseByAttributes(ctx *gin.Context) {
	var query dto.CourseAttributesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithValidationError(ctx, "Invalid course query", err)
		return
	}

	course, err := c.courseService.GetByAttributes(ctx.Request.Context(), query.DepartmentID, query.CourseNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromCourse(course), "Course retrieved successfully"))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromCourse(course), "Course retrieved successfully"))
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course attributes"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.courseService.Insert(ctx.Request.Context(), req.DepartmentID.String(), req.CourseNumber.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromCourse(course), "Course created successfully"))
}

// UpdateCourse patches an existing course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course attributes"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.courseService.UpdateByID(ctx.Request.Context(), id, req.DepartmentID.String(), req.CourseNumber.String())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromCourse(course), "Course updated successfully"))
}

// DeleteCoursesByAttributes deletes courses by department id and course number
// @Summary Delete courses by department and number
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param departmentId query string true "Department ID"
// @Param courseNumber query string true "Course number"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResultResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /courses [delete]
func (c *CourseController) DeleteCoursesByAttributes(ctx *gin.Context) {
	var query dto.CourseAttributesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithValidationError(ctx, "Invalid course query", err)
		return
	}

	deleted, err := c.courseService.DeleteByAttributes(ctx.Request.Context(), query.DepartmentID, query.CourseNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResultResponse{Deleted: deleted}, ""))
}

// DeleteCourse deletes a course by ID
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResultResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	deleted, err := c.courseService.DeleteByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeleteResultResponse{Deleted: deleted}, ""))
}
