package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Validación de payloads antes de los casos de uso: un Schema es una lista
// ordenada de reglas por campo y Validate devuelve el mensaje de la PRIMERA
// regla violada (sin agregación). Es una función pura: ningún efecto colateral,
// ninguna dependencia de la petición HTTP.

// FileInfo metadatos del archivo subido, lo único que las reglas inspeccionan.
type FileInfo struct {
	Mimetype string
	Size     int64
}

// Check evalúa un valor; devuelve "" si pasa o el mensaje de error si no.
// present distingue campo ausente de campo con valor vacío.
type Check func(field string, v any, present bool) string

// FieldRule reglas de un campo, evaluadas en orden.
type FieldRule struct {
	Field  string
	Checks []Check
}

// Schema lista ordenada de campos a validar. El orden define qué error gana.
type Schema []FieldRule

// Validate evalúa el payload contra el schema. Devuelve nil si todo pasa o un
// error con el mensaje de la primera violación.
func (s Schema) Validate(payload map[string]any) error {
	for _, fr := range s.Checks() {
		v, present := payload[fr.Field]
		for _, check := range fr.Checks {
			if msg := check(fr.Field, v, present); msg != "" {
				return errors.New(msg)
			}
		}
	}
	return nil
}

// Checks devuelve las reglas del schema (alias para legibilidad en Validate).
func (s Schema) Checks() []FieldRule { return s }

// Field construye la regla de un campo.
func Field(name string, checks ...Check) FieldRule {
	return FieldRule{Field: name, Checks: checks}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RequiredString exige un string no vacío.
func RequiredString() Check {
	return func(field string, v any, present bool) string {
		s, ok := v.(string)
		if !present || !ok || strings.TrimSpace(s) == "" {
			return fmt.Sprintf("%q is required", field)
		}
		return ""
	}
}

// Email exige formato de email (sobre un valor ya presente).
func Email() Check {
	return func(field string, v any, present bool) string {
		s, _ := v.(string)
		if !emailRe.MatchString(s) {
			return fmt.Sprintf("%q must be a valid email", field)
		}
		return ""
	}
}

// OneOf exige pertenencia al conjunto de valores permitidos.
func OneOf(allowed ...string) Check {
	return func(field string, v any, present bool) string {
		s, _ := v.(string)
		for _, a := range allowed {
			if s == a {
				return ""
			}
		}
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(allowed, ", "))
	}
}

// OptionalOneOf como OneOf pero acepta campo ausente o vacío.
func OptionalOneOf(allowed ...string) Check {
	inner := OneOf(allowed...)
	return func(field string, v any, present bool) string {
		if !present {
			return ""
		}
		if s, ok := v.(string); ok && s == "" {
			return ""
		}
		return inner(field, v, present)
	}
}

// OptionalPositiveInt acepta ausencia; si está, exige entero >= 1.
// Tolera string numérico porque los query params llegan como texto.
func OptionalPositiveInt() Check {
	return func(field string, v any, present bool) string {
		if !present {
			return ""
		}
		switch n := v.(type) {
		case int:
			if n >= 1 {
				return ""
			}
		case int64:
			if n >= 1 {
				return ""
			}
		case float64:
			if n >= 1 && n == float64(int64(n)) {
				return ""
			}
		case string:
			if n == "" {
				return ""
			}
			if parsed, err := strconv.Atoi(n); err == nil && parsed >= 1 {
				return ""
			}
		}
		return fmt.Sprintf("%q must be a positive integer", field)
	}
}

// RequiredFile exige un FileInfo con mimetype permitido y tamaño máximo.
func RequiredFile(allowedMimetypes []string, maxSize int64) Check {
	return func(field string, v any, present bool) string {
		f, ok := v.(FileInfo)
		if !present || !ok {
			return fmt.Sprintf("%q is required", field)
		}
		allowed := false
		for _, m := range allowedMimetypes {
			if f.Mimetype == m {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Sprintf("%q mimetype must be one of [%s]", field, strings.Join(allowedMimetypes, ", "))
		}
		if f.Size > maxSize {
			return fmt.Sprintf("%q size must be at most %d bytes", field, maxSize)
		}
		return ""
	}
}
