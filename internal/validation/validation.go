// Package validation wraps go-playground/validator so every mutating
// endpoint reports schema failures in the same shape: an ordered list of
// {path, message} pairs keyed by JSON field names.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report paths using json tag names so errors match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates v and returns nil when it passes, otherwise the full
// ordered error list. The store is never consulted here.
func Struct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Path: "", Message: "Invalid request payload."}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Path: pathOf(fe), Message: messageFor(fe)})
	}
	return out
}

// pathOf strips the root struct name from the namespace, leaving the
// dotted JSON path ("data.workExperience[0].title").
func pathOf(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	field := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return "Invalid email format."
	case "url":
		return "Must be a valid URL."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

// label turns a json field name into a readable one: "jobDescription" ->
// "Job description".
func label(name string) string {
	if name == "" {
		return "Field"
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0 && r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case i > 0 && r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
