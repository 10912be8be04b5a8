package utils

import (
	"patientdesk-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON name so the error mapping matches what the
	// form actually submitted.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// The records form only accepts the plain local@domain.tld shape, which is
	// stricter than the library default.
	validate.RegisterValidation("email", validateEmail)
	// "numeric" here means digits only, not any parseable number.
	validate.RegisterValidation("numeric", validateDigitsOnly)
}

func validateEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}

func validateDigitsOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexNumeric)
	return re.MatchString(value)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
