package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the pwd alias (minimum password length) and the birthdate rule.
func Init(minBirthYear, minAge int) {
	SetBirthDateBounds(minBirthYear, minAge)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=6")
		_ = v.RegisterValidation("birthdate", func(fl validator.FieldLevel) bool {
			_, err := ParseBirthDate(fl.Field().String())
			return err == nil
		})
	}
}

// FirstError returns the first failing rule's message, prefixed with the
// field name. Diagnostics are first-error-wins.
func FirstError(err error) string {
	if err == nil {
		return ""
	}
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return "invalid json payload"
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field() + " " + messageFor(fe)
	}
	return "invalid payload"
}

// Details converts binding errors into a map[field]message for the response
// envelope's error field.
func Details(err error) map[string]string {
	if err == nil {
		return nil
	}
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = messageFor(fe)
		}
		return out
	}
	return map[string]string{"payload": "invalid payload"}
}

func messageFor(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "min", "pwd":
		p := param
		if tag == "pwd" {
			p = "6"
		}
		if fe.Kind() == reflect.String {
			return "must be at least " + p + " characters long"
		}
		return "must be at least " + p
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters long"
		}
		return "must be at most " + param
	case "birthdate":
		if _, err := ParseBirthDate(fmt.Sprintf("%v", fe.Value())); err != nil {
			return err.Error()
		}
		return "must be a valid birth date"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}
