// Package validation builds the shared validator instance and turns its errors
// into field/message pairs suitable for API responses.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"hrm-api/internal/models"
	"hrm-api/internal/timeconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New returns a validator with the project's custom tags registered:
//
//	clock12         12-hour clock value, "2:00 PM"
//	notblank        non-empty after trimming whitespace
//	trimmin=N       at least N characters after trimming whitespace
//	interviewstatus pending, passed or failed
//	positionlevel   Junior, Mid, Senior or Manager
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	}))
	must(v.RegisterValidation("clock12", func(fl validator.FieldLevel) bool {
		return timeconv.Valid12(fl.Field().String())
	}))
	must(v.RegisterValidation("interviewstatus", func(fl validator.FieldLevel) bool {
		return models.InterviewStatus(fl.Field().String()).IsValid()
	}))
	must(v.RegisterValidation("positionlevel", func(fl validator.FieldLevel) bool {
		return models.PositionLevel(fl.Field().String()).IsValid()
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Fields flattens a validator error into one entry per violated field, in
// struct order. Errors that are not validation errors yield nil.
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace so nested fields
// read as "review.score".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		if isNumeric(fe.Kind()) {
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "trimmin":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		if isNumeric(fe.Kind()) {
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "clock12":
		return fmt.Sprintf("%s must be a time like 2:00 PM", field)
	case "interviewstatus":
		return fmt.Sprintf("%s must be one of pending, passed, failed", field)
	case "positionlevel":
		return fmt.Sprintf("%s must be one of Junior, Mid, Senior, Manager", field)
	case "dive":
		return fmt.Sprintf("%s contains an invalid item", field)
	}
	return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
