package http

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the tags and field naming the request structs rely on.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// firstValidationMessage returns the message for the first failing field, or "" when obj is valid.
func firstValidationMessage(v *validator.Validate, obj any) string {
	err := v.Struct(obj)
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}
	return getErrorMsg(validationErrors[0])
}

func getErrorMsg(err validator.FieldError) string {
	label := fieldLabel(err.Field())
	switch err.Tag() {
	case "required", "notblank":
		return label + " cannot be empty"
	case "min", "max":
		return label + " must contain from 1 to 50 characters"
	case "datetime":
		return label + " must be in dd-MM-yyyy format"
	default:
		return label + " is invalid"
	}
}

func fieldLabel(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
