package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/courseportfolio/internal/app/models"
	"github.com/yigit/courseportfolio/internal/pkg/apperrors"
)

// CourseStore is the storage the course service forwards to.
// Delete methods return the number of affected rows.
type CourseStore interface {
	FindByAttributes(ctx context.Context, departmentID, courseNumber int) (*models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	InsertOne(ctx context.Context, payload models.CoursePayload) (*models.Course, error)
	PatchByID(ctx context.Context, id int64, payload models.CoursePayload) (*models.Course, error)
	DeleteByAttributes(ctx context.Context, departmentID, courseNumber int) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	GenerateCoursePayload(departmentID, courseNumber string) (models.CoursePayload, error)
	GetByAttributes(ctx context.Context, departmentID, courseNumber string) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Insert(ctx context.Context, departmentID, courseNumber string) (*models.Course, error)
	UpdateByID(ctx context.Context, id int64, departmentID, courseNumber string) (*models.Course, error)
	DeleteByAttributes(ctx context.Context, departmentID, courseNumber string) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	store  CourseStore
	logger zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(store CourseStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		store:  store,
		logger: logger.With().Str("component", "course_service").Logger(),
	}
}

// rowsDeleted maps an affected-row count onto the boolean callers expect.
func rowsDeleted(affected int64) bool {
	return affected > 0
}

// parseInteger parses a base-10 integer the way the HTTP layer receives it.
func parseInteger(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", apperrors.ErrValidationFailed, field, raw)
	}
	return value, nil
}

// GenerateCoursePayload builds the storage payload from raw department id and course number.
// No range checks are made; negative values pass through.
func (s *courseServiceImpl) GenerateCoursePayload(departmentID, courseNumber string) (models.CoursePayload, error) {
	dept, err := parseInteger("department_id", departmentID)
	if err != nil {
		return models.CoursePayload{}, err
	}

	number, err := parseInteger("course_number", courseNumber)
	if err != nil {
		return models.CoursePayload{}, err
	}

	return models.CoursePayload{
		DepartmentID: dept,
		Number:       number,
	}, nil
}

// GetByAttributes retrieves the course identified by department id and course number
func (s *courseServiceImpl) GetByAttributes(ctx context.Context, departmentID, courseNumber string) (*models.Course, error) {
	payload, err := s.GenerateCoursePayload(departmentID, courseNumber)
	if err != nil {
		return nil, err
	}

	return s.store.FindByAttributes(ctx, payload.DepartmentID, payload.Number)
}

// GetByID retrieves a course by ID
func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.store.FindByID(ctx, id)
}

// Insert creates a new course
func (s *courseServiceImpl) Insert(ctx context.Context, departmentID, courseNumber string) (*models.Course, error) {
	payload, err := s.GenerateCoursePayload(departmentID, courseNumber)
	if err != nil {
		return nil, err
	}

	course, err := s.store.InsertOne(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("courseId", course.ID).
		Int("departmentId", course.DepartmentID).
		Int("courseNumber", course.CourseNumber).
		Msg("Course created")
	return course, nil
}

// UpdateByID patches the course with the given ID and returns the updated course
func (s *courseServiceImpl) UpdateByID(ctx context.Context, id int64, departmentID, courseNumber string) (*models.Course, error) {
	payload, err := s.GenerateCoursePayload(departmentID, courseNumber)
	if err != nil {
		return nil, err
	}

	course, err := s.store.PatchByID(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", course.ID).Msg("Course updated")
	return course, nil
}

// DeleteByAttributes deletes the courses matching department id and course number.
// It reports whether any row was deleted.
func (s *courseServiceImpl) DeleteByAttributes(ctx context.Context, departmentID, courseNumber string) (bool, error) {
	payload, err := s.GenerateCoursePayload(departmentID, courseNumber)
	if err != nil {
		return false, err
	}

	affected, err := s.store.DeleteByAttributes(ctx, payload.DepartmentID, payload.Number)
	if err != nil {
		return false, err
	}

	s.logger.Debug().
		Int("departmentId", payload.DepartmentID).
		Int("courseNumber", payload.Number).
		Int64("affected", affected).
		Msg("Delete by attributes")
	return rowsDeleted(affected), nil
}

// DeleteByID deletes a course by ID and reports whether it existed
func (s *courseServiceImpl) DeleteByID(ctx context.Context, id int64) (bool, error) {
	affected, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Debug().Int64("courseId", id).Int64("affected", affected).Msg("Delete by id")
	return rowsDeleted(affected), nil
}
