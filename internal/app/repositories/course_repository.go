package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/courseportfolio/internal/app/models"
	"github.com/yigit/courseportfolio/internal/pkg/apperrors"
	"github.com/yigit/courseportfolio/internal/pkg/dberrors"
)

// courseNaturalKeyConstraint is the unique constraint over (department_id, course_number)
const courseNaturalKeyConstraint = "courses_department_id_course_number_key"

// Course error types
var (
	ErrCourseNotFound      = apperrors.NewResourceNotFoundError("course not found")
	ErrCourseAlreadyExists = apperrors.NewConflictError("course with this department and number already exists")
)

// DBTX is the subset of pgxpool.Pool (and pgx.Tx) the repositories need
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	if err := row.Scan(&course.ID, &course.DepartmentID, &course.CourseNumber); err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByAttributes returns the course matching both the department id and course number
func (r *CourseRepository) FindByAttributes(ctx context.Context, departmentID, courseNumber int) (*models.Course, error) {
	query := `
		SELECT id, department_id, course_number
		FROM courses
		WHERE department_id = $1 AND course_number = $2
		ORDER BY id
		LIMIT 1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, departmentID, courseNumber))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course by attributes: %w", err)
	}

	return course, nil
}

// FindByID retrieves a course by ID
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, department_id, course_number
		FROM courses
		WHERE id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// InsertOne stores a new course and returns it with its assigned ID
func (r *CourseRepository) InsertOne(ctx context.Context, payload models.CoursePayload) (*models.Course, error) {
	query := `
		INSERT INTO courses (department_id, course_number)
		VALUES ($1, $2)
		RETURNING id, department_id, course_number
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, payload.DepartmentID, payload.Number))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseNaturalKeyConstraint) {
			return nil, ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// PatchByID applies payload to the course with the given ID and returns the updated row
func (r *CourseRepository) PatchByID(ctx context.Context, id int64, payload models.CoursePayload) (*models.Course, error) {
	query := `
		UPDATE courses
		SET department_id = $1, course_number = $2
		WHERE id = $3
		RETURNING id, department_id, course_number
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, payload.DepartmentID, payload.Number, id))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, ErrCourseNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, courseNaturalKeyConstraint) {
			return nil, ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteByAttributes deletes every course matching the department id and course number.
// It returns the number of deleted rows.
func (r *CourseRepository) DeleteByAttributes(ctx context.Context, departmentID, courseNumber int) (int64, error) {
	query := `DELETE FROM courses WHERE department_id = $1 AND course_number = $2`

	cmdTag, err := r.db.Exec(ctx, query, departmentID, courseNumber)
	if err != nil {
		return 0, fmt.Errorf("error deleting course by attributes: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteByID deletes a course by ID and returns the number of deleted rows
func (r *CourseRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM courses WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting course: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
