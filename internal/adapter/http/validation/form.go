package validation

import (
	"errors"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MsgFieldRequired      = "fieldRequired"
	MsgFieldTooShort      = "fieldTooShort"
	MsgFieldTooLong       = "fieldTooLong"
	MsgInvalidEmail       = "invalidEmail"
	MsgPasswordsMustMatch = "passwordsMustMatch"
	MsgInvalidChoice      = "invalidChoice"
	MsgInvalidDate        = "invalidDate"
	MsgInvalidField       = "invalidField"
)

// FieldError is a translatable message attached to one form field.
type FieldError struct {
	MessageID string
	Param     string
}

// FieldErrors maps form field names (the `form` tag) to their first error.
type FieldErrors map[string]FieldError

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, fe := range e {
		fields = append(fields, field+": "+fe.MessageID)
	}
	sort.Strings(fields)
	return "invalid form: " + strings.Join(fields, ", ")
}

func (e FieldErrors) add(field, messageID, param string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = FieldError{MessageID: messageID, Param: param}
}

// Decode fills a form schema from submitted values. It does not validate.
func Decode(values url.Values, form any) error {
	return binding.MapFormWithTag(form, values, "form")
}

// validateStruct runs the `binding` rules of form and converts failures into
// FieldErrors. It returns nil when the form is valid.
func validateStruct(form any) FieldErrors {
	err := binding.Validator.ValidateStruct(form)
	if err == nil {
		return nil
	}

	fieldErrors := FieldErrors{}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors.add("form", MsgInvalidField, "")
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors.add(formFieldName(form, fe.StructField()), messageForTag(fe.Tag()), fe.Param())
	}
	return fieldErrors
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return MsgFieldRequired
	case "min":
		return MsgFieldTooShort
	case "max":
		return MsgFieldTooLong
	case "email":
		return MsgInvalidEmail
	case "eqfield":
		return MsgPasswordsMustMatch
	case "oneof":
		return MsgInvalidChoice
	case "datetime":
		return MsgInvalidDate
	default:
		return MsgInvalidField
	}
}

func formFieldName(form any, structField string) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if field, ok := t.FieldByName(structField); ok {
		if name := field.Tag.Get("form"); name != "" {
			return name
		}
	}
	return strings.ToLower(structField)
}
