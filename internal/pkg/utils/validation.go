package utils

import (
	"regexp"

	"medibook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("slot_date", validateSlotDate)
	validate.RegisterValidation("slot_time", validateSlotTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	hasDigit := regexp.MustCompile(constvars.RegexContainAtLeastOneDigit).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase && hasDigit
}

func validateSlotDate(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexSlotDate).MatchString(fl.Field().String())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexSlotTime).MatchString(fl.Field().String())
}
