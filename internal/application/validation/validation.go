// Package validation valida los DTOs de entrada con go-playground/validator usando
// los nombres JSON de los campos.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	// decimal.Decimal se valida como float64 (gte, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// Error errores de validación por campo. errors.Is(err, domain.ErrInvalidInput) es true.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// Field construye un error de un solo campo (reglas que dependen del estado).
func Field(name, message string) *Error {
	return &Error{Fields: map[string]string{name: message}}
}

// Struct valida v según sus tags `validate`.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &Error{Fields: make(map[string]string, len(errs))}
	for _, fe := range errs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("formato de fecha esperado %s", fe.Param())
	case "email":
		return "debe ser un email válido"
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "iscolor", "hexcolor":
		return "debe ser un color #RRGGBB"
	case "url":
		return "debe ser una URL válida"
	}
	return "es inválido"
}
