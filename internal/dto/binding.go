package dto

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeRe accepts ISO-4217 style codes plus local non-ISO codes such
// as SLSH, which is why the stock iso4217 rule is not used.
var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3,5}$`)

// RegisterValidations installs the custom binding rules on gin's validator.
// Must run once at startup before routes are served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodeRe.MatchString(fl.Field().String())
	})
}
