package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var usStateRe = regexp.MustCompile(`^[A-Z]{2}$`)

func init() {
	validate = validator.New()

	// us_state - двухбуквенный код штата (данные OPIS только по США)
	_ = validate.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		return usStateRe.MatchString(fl.Field().String())
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
