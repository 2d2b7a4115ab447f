package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var clockTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("hhmm", ValidateClockTimeRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("hhmm", ValidateClockTimeRule)
	}
}

func ValidateClockTimeRule(fl validator.FieldLevel) bool {
	return ValidateClockTime(fl.Field().String())
}

// ValidateClockTime checks a 24h "HH:mm" reminder time string.
func ValidateClockTime(t string) bool {
	return clockTimeRe.MatchString(t)
}
