package webutil

import (
	"reflect"
	"strings"

	"studymentor/internal/model"

	"github.com/go-playground/validator/v10"
)

// Validator is the application-wide validator instance. Field names in error
// messages come from json tags so they match the wire format.
var Validator *validator.Validate

func init() {
	Validator = validator.New()

	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// NewValidationError converts validator errors into a client-facing
// AppError, using the first failed field as the representative.
func NewValidationError(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		"Field validation for '"+first.Field()+"' failed on the '"+first.Tag()+"' tag.",
		first.Field(),
		model.ErrInvalidInput,
	)
}
