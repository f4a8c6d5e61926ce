package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// formError lists the form fields that failed validation, by their form name.
type formError struct {
	Fields []string
}

func (e *formError) Error() string {
	return "invalid form fields: " + strings.Join(e.Fields, ", ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in errors are the `form` tag names the browser posted.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Validation failures come
// back as *formError.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fe := &formError{Fields: make([]string, 0, len(ve))}
	for _, f := range ve {
		fe.Fields = append(fe.Fields, f.Field())
	}
	return fe
}
