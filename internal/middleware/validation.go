package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/courseportfolio/internal/app/models/dto"
)

// validationDetails turns binding errors into one ErrorDetail per offending field.
// Errors that are not validator errors (bad JSON, wrong types) are returned as text.
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	details := make([]dto.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, *dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(fe)).
			WithField(fe.Field()))
	}
	return details
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "numeric":
		return e.Field() + " must be numeric"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
