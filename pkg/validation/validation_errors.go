package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a json field name to a user facing message
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the field failed
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Struct validates s and returns nil when every rule passes. messages
// overrides the text per field; a field without an override gets a
// generic message built from the failing tag.
func Struct(s interface{}, messages map[string]string) FieldErrors {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	return FormatValidationErrors(err, messages)
}

// FormatValidationErrors converts validator.ValidationErrors to per-field messages.
// Only the first failing rule of a field is reported.
func FormatValidationErrors(err error, messages map[string]string) FieldErrors {
	out := FieldErrors{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, report it against the whole payload
		out["_"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := messages[field]; ok {
			out[field] = msg
			continue
		}
		out[field] = formatSingleError(e)
	}

	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := formatLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "email":
		return "Invalid email"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// formatLabel turns "display_order" into "Display order"
func formatLabel(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
