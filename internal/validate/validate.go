package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/swipe/config.go
//   type Config struct {
// 		 ...
//       LeftColor	string	`yaml:"left_color" validate:"omitempty,swipecolor"`
//   }
//
// The swipecolor tag accepts a named terminal color, an ANSI 256 palette index or a hex color.

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// NamedColors are the color names understood by the renderer.
//
//nolint:gochecknoglobals // Read-only lookup table.
var NamedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
	"orange":  "208",
	"purple":  "93",
}

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for an empty tag or nil func.
		_ = validatorInst.RegisterValidation("swipecolor", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})
	})
	return validatorInst
}

// IsColor reports whether s is a named color, an ANSI palette index (0-255) or #rgb/#rrggbb.
func IsColor(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if _, ok := NamedColors[s]; ok {
		return true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n >= 0 && n <= 255
	}
	return Var(s, "hexcolor") == nil
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}

// FieldErrors returns the namespaced field names that failed validation, or nil.
func FieldErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice type directly.
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.StructField())
	}
	return fields
}
