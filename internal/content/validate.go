package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError names every failing field (by its JSON name) and the reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid data: " + strings.Join(parts, "; ")
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreate checks that every required field is present and well formed.
func ValidateCreate(payload any) error {
	return translate(validate.Struct(payload))
}

// ValidateUpdate applies the same rules as ValidateCreate to the fields that
// are present, leaving absent ones alone.
func ValidateUpdate(payload any) error {
	present := presentFields(payload)
	if len(present) == 0 {
		return nil
	}
	return translate(validate.StructPartial(payload, present...))
}

func presentFields(payload any) []string {
	v := reflect.Indirect(reflect.ValueOf(payload))
	if v.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch {
		case f.Kind() == reflect.Pointer && !f.IsNil():
			names = append(names, v.Type().Field(i).Name)
		case f.Type() == reflect.TypeOf(NullableString{}) && f.Interface().(NullableString).Set:
			names = append(names, v.Type().Field(i).Name)
		}
	}
	return names
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = reason(fe)
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "latitude":
		return "must be a decimal latitude between -90 and 90"
	case "longitude":
		return "must be a decimal longitude between -180 and 180"
	default:
		return "is invalid"
	}
}

// DecodeError turns a JSON decoding failure into a ValidationError so that
// a bad "order" or a wrongly typed field is reported like any other field.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		if typeErr.Type == reflect.TypeOf(Number(0)) {
			return FieldError(field, "must be an integer")
		}
		return FieldError(field, "must be a "+typeErr.Type.String())
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return FieldError("body", "malformed JSON")
	case errors.Is(err, io.EOF):
		return FieldError("body", "request body is required")
	default:
		return FieldError("body", err.Error())
	}
}
