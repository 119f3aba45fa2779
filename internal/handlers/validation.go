package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns a gin binding error into the field→message
// map the front-end renders next to form inputs.
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
		return out
	}

	var jerr *json.UnmarshalTypeError
	if errors.As(err, &jerr) && jerr.Field != "" {
		out[jerr.Field] = "Invalid value"
		return out
	}

	out["non_field_errors"] = "Invalid request body"
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	default:
		return "Invalid value"
	}
}
