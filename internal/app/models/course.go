package models

// Course represents a course offered by a department.
type Course struct {
	ID           int64 `json:"id" db:"id"`
	DepartmentID int   `json:"department_id" db:"department_id"`
	CourseNumber int   `json:"course_number" db:"course_number"`
}

// CoursePayload is the data written to storage when a course is inserted or patched.
// Number is persisted as the course_number column.
type CoursePayload struct {
	DepartmentID int `json:"department_id"`
	Number       int `json:"number"`
}
