package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(validateReportingPeriod, domain.ReportingPeriod{})
}

// validateReportingPeriod rejects periods that end before they start.
func validateReportingPeriod(sl validator.StructLevel) {
	p := sl.Current().Interface().(domain.ReportingPeriod)
	if p.Start != "" && p.End != "" && p.End < p.Start {
		sl.ReportError(p.End, "end", "End", "periodorder", "")
	}
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]problem.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: getValidationMessage(fe),
		})
	}
	return fieldErrors
}

// fieldPath drops the root type name: "PreviewRequest.users[0].engagement.modality"
// becomes "users[0].engagement.modality".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "gt":
		return "must be greater than " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "ltefield":
		return "must not exceed " + lowerFirst(err.Param())
	case "periodorder":
		return "must not be before start"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
