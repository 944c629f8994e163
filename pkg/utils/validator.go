package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"QR-Code-Tracker/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateStruct returns one violation per failed field, or nil when s is valid.
func ValidateStruct(s interface{}) []*models.FieldViolation {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*models.FieldViolation{{Message: err.Error()}}
	}

	var violations []*models.FieldViolation
	for _, fe := range validationErrors {
		element := models.FieldViolation{
			Field: fe.Field(),
			Tag:   fe.Tag(),
		}

		switch fe.Tag() {
		case "required":
			element.Message = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "notblank":
			element.Message = fmt.Sprintf("Field '%s' must not be blank.", element.Field)
		case "max":
			element.Message = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, fe.Param())
		case "email":
			element.Message = "Invalid email format."
		default:
			element.Message = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
		}
		violations = append(violations, &element)
	}
	return violations
}
