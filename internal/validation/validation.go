// Package validation wires go-playground/validator's engine into
// gin's binding package with the one custom rule the spec needs: a
// player name charset check beyond what the struct tag's builtin
// rules alone express.
package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9 -]{2,20}$`)

// RegisterValidators installs custom validation rules on gin's
// default validator engine. Call once at startup before the first
// request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("player_name", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
}
