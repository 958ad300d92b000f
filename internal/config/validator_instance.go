package config

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	keyModifiers = []string{"ctrl+", "alt+", "shift+"}
	namedKeys    = map[string]struct{}{
		"up": {}, "down": {}, "left": {}, "right": {},
		"home": {}, "end": {}, "pgup": {}, "pgdown": {},
		"enter": {}, "esc": {}, "tab": {}, "space": {},
		"backspace": {}, "delete": {}, "insert": {},
		"f1": {}, "f2": {}, "f3": {}, "f4": {}, "f5": {}, "f6": {},
		"f7": {}, "f8": {}, "f9": {}, "f10": {}, "f11": {}, "f12": {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("keyname", func(fl validator.FieldLevel) bool {
			return IsKeyName(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// IsKeyName reports whether name is a key string bubbletea can produce: a
// single character or a named key, optionally prefixed by ctrl+, alt+ or shift+.
func IsKeyName(name string) bool {
	if name == " " {
		return true
	}
	rest := name
	for {
		trimmed := rest
		for _, mod := range keyModifiers {
			trimmed = strings.TrimPrefix(trimmed, mod)
		}
		if trimmed == rest {
			break
		}
		rest = trimmed
	}
	if rest == "" || strings.TrimSpace(rest) != rest {
		return false
	}
	if utf8.RuneCountInString(rest) == 1 {
		return true
	}
	_, ok := namedKeys[rest]
	return ok
}
