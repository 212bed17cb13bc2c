package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gt":          "{field} must be greater than {param}",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"ne":          "{field} must not be {param}",
		"oneof":       "{field} must be one of {param}",
		"email":       "{field} must be a valid email address",
		"isodate":     "{field} must be an ISO-8601 date",
		"datetime":    "{field} must match the format {param}",
		"unique":      "{field} must not contain duplicates",
		"nefield":     "{field} must differ from {param}",
		"gtefield":    "{field} must not be before {param}",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must be at most {param} MB",
	}

	// by kind: max and min read as a length on strings and lists
	lengthMessages = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	}

	countMessages = map[string]string{
		"max": "{field} must have at most {param} items",
		"min": "{field} must have at least {param} items",
	}

	numberMessages = map[string]string{
		"max": "{field} must be less than or equal to {param}",
		"min": "{field} must be greater than or equal to {param}",
	}
)

// message renders the first failed rule as a sentence for the client.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template := lookup(valErr)
		if template == "" {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}

func lookup(valErr val.FieldError) string {
	if template, ok := messages[valErr.Tag()]; ok {
		return template
	}

	switch valErr.Kind() { //nolint:exhaustive
	case reflect.String:
		return lengthMessages[valErr.Tag()]
	case reflect.Slice, reflect.Array, reflect.Map:
		return countMessages[valErr.Tag()]
	default:
		return numberMessages[valErr.Tag()]
	}
}
