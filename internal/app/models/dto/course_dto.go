package dto

import (
	"encoding/json"

	"github.com/yigit/courseportfolio/internal/app/models"
)

// CourseRequest carries the department id and course number for create, update
// and payload requests. Both accept JSON numbers or numeric strings.
type CourseRequest struct {
	DepartmentID json.Number `json:"departmentId" binding:"required" example:"1"`
	CourseNumber json.Number `json:"courseNumber" binding:"required" example:"101"`
}

// CourseAttributesQuery selects courses by their (department, number) pair
type CourseAttributesQuery struct {
	DepartmentID string `form:"departmentId" binding:"required"`
	CourseNumber string `form:"courseNumber" binding:"required"`
}

// CourseResponse represents a stored course
type CourseResponse struct {
	ID           int64 `json:"id" example:"1"`
	DepartmentID int   `json:"departmentId" example:"1"`
	CourseNumber int   `json:"courseNumber" example:"101"`
}

// CoursePayloadResponse represents a payload built from raw inputs
type CoursePayloadResponse struct {
	DepartmentID int `json:"departmentId" example:"1"`
	Number       int `json:"number" example:"101"`
}

// DeleteResultResponse reports whether a delete affected any row
type DeleteResultResponse struct {
	Deleted bool `json:"deleted"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		DepartmentID: course.DepartmentID,
		CourseNumber: course.CourseNumber,
	}
}

// FromCoursePayload converts a models.CoursePayload to a CoursePayloadResponse
func FromCoursePayload(payload models.CoursePayload) CoursePayloadResponse {
	return CoursePayloadResponse{
		DepartmentID: payload.DepartmentID,
		Number:       payload.Number,
	}
}
