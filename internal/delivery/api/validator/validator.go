// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request bodies using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator. Field names in messages follow the json tags.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// ValidationError lists the rejected request fields by their json names.
type ValidationError struct {
	fields   map[string]string
	messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.messages, "; ")
}

// Fields maps each rejected json field to its message; it is the envelope's details.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// Validate implements echo.Validator. Field failures come back as *ValidationError.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	verr := &ValidationError{
		fields:   make(map[string]string, len(fieldErrs)),
		messages: make([]string, 0, len(fieldErrs)),
	}
	for _, fe := range fieldErrs {
		msg := fieldMessage(fe)
		verr.fields[fe.Field()] = msg
		verr.messages = append(verr.messages, msg)
	}

	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
