package exceptions

import (
	"patientdesk-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationErrors folds validator errors into a field -> message mapping,
// keyed by the struct field's JSON name (validator is configured to report it).
func MapValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields[constvars.ResponseUnknown] = constvars.ErrClientCannotProcessRequest
		return fields
	}

	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		tag := fieldErr.Tag()
		customMessage, known := constvars.CustomValidationErrorMessages[tag]
		if !known {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
			}
		}
		fields[fieldName] = customMessage
	}
	return fields
}
