package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is a single cell-level failure with translation metadata.
// Field is the column the failure is recorded under.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error implements the error interface so hooks can return a single failure.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewError builds a ValidationError without translation metadata.
func NewError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a deferred boolean check with the error reported when it fails.
// Cleaning hooks use rules to validate a single cell.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// FromError converts any error returned by a cleaning hook into validation
// errors recorded under field.
//
// ValidationErrors contribute one entry per element and a ValidationError keeps
// its translation metadata. Any other error contributes its text. Every entry
// is attributed to field. A nil error yields nil.
func FromError(field string, err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var out ValidationErrors
	var multi ValidationErrors
	var single ValidationError
	switch {
	case errors.As(err, &multi):
		out = make(ValidationErrors, 0, len(multi))
		out = append(out, multi...)
	case errors.As(err, &single):
		out = ValidationErrors{single}
	default:
		out = ValidationErrors{{Field: field, Message: err.Error()}}
	}

	for i := range out {
		out[i].Field = field
	}
	return out
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return true
	}
	var single ValidationError
	return errors.As(err, &single)
}
