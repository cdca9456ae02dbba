package model

import (
	"errors"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once

	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// month: YYYY-MM
		_ = validate.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return monthPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// FormatValidationError converts validator errors to ErrorDetail
func FormatValidationError(err error) *ErrorDetail {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		e := validationErrors[0]
		return &ErrorDetail{
			Code:    "bad_request",
			Message: "Field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag",
		}
	}

	return &ErrorDetail{
		Code:    "bad_request",
		Message: err.Error(),
	}
}

func badRequest(msg string) *ErrorDetail {
	return &ErrorDetail{Code: "bad_request", Message: msg}
}

// IsValidMonth reports whether s is a YYYY-MM month key.
func IsValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}
