// Package services holds the business logic sitting between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
// - CourseService: builds course payloads and forwards course CRUD to a CourseStore
package services
