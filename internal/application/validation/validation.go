// Package validation decodifica formularios no tipados (map[string]any) a structs y los valida.
// Falla cerrado: cualquier error se devuelve como *domain.ValidationError antes de tocar el store.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
	"github.com/mitchellh/mapstructure"
)

// FormField clave usada cuando el error no pertenece a un campo concreto.
const FormField = "_form"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo en errores = tag form (los del formulario del cliente).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// uuid: forma canónica de 36 caracteres en mayúsculas o minúsculas.
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
	return v
}

// Decode copia fields en out (puntero a struct con tags form/validate) y valida.
// Los strings se recortan antes de validar, así "   " no pasa un required.
// Sin conversión débil: un número o booleano en un campo string es un formulario inválido.
func Decode(fields map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: false,
		DecodeHook:       trimStrings,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(fields); err != nil {
		return &domain.ValidationError{Fields: map[string]string{FormField: i18n.MsgInvalidInput}}
	}
	return Struct(out)
}

// Struct valida un struct ya tipado.
func Struct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Fields: map[string]string{FormField: i18n.MsgInvalidInput}}
	}
	t := reflect.Indirect(reflect.ValueOf(in)).Type()
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = messageKey(t, fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// messageKey toma la clave del tag msg del campo. Formatos: "clave" o "regla:clave;regla:clave".
func messageKey(t reflect.Type, fe validator.FieldError) string {
	sf, ok := t.FieldByName(fe.StructField())
	if !ok {
		return defaultKey(fe.Tag())
	}
	tag := sf.Tag.Get("msg")
	if tag == "" {
		return defaultKey(fe.Tag())
	}
	if !strings.Contains(tag, ":") {
		return tag
	}
	for _, part := range strings.Split(tag, ";") {
		rule, key, found := strings.Cut(strings.TrimSpace(part), ":")
		if found && rule == fe.Tag() {
			return key
		}
	}
	return defaultKey(fe.Tag())
}

func defaultKey(rule string) string {
	if rule == "required" {
		return i18n.MsgFieldRequired
	}
	return i18n.MsgInvalidInput
}

func trimStrings(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	return strings.TrimSpace(reflect.ValueOf(data).String()), nil
}
