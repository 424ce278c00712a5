package service

import (
	"errors"
	"fmt"
	"strings"

	"formcraft/internal/model"
)

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrEmptyUpload      = errors.New("uploaded file is empty")
	ErrUnsupportedMedia = errors.New("unsupported file type")
)

// ValidationError lists the request fields that were rejected
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Fields) {
	case 0:
		return ErrValidationFailed.Error()
	case 1:
		return fmt.Sprintf("%s: %s %s", ErrValidationFailed, e.Fields[0].Field, e.Fields[0].Message)
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("%s: %d field errors (%s)", ErrValidationFailed, len(e.Fields), strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func newFieldError(field, rule, message string) *ValidationError {
	return &ValidationError{Fields: []model.FieldError{{Field: field, Rule: rule, Message: message}}}
}

// IsNotFound reports whether err means the requested form does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFormNotFound)
}

// IsValidation reports whether err is a rejected request
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrEmptyUpload) ||
		errors.Is(err, ErrUnsupportedMedia)
}
