package httpx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var priceRe = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("price", validatePrice)
}

// validatePrice accepts a non-negative amount with up to two fractional
// digits, e.g. "25", "25.5" or "25.00".
func validatePrice(fl validator.FieldLevel) bool {
	return priceRe.MatchString(fl.Field().String())
}

func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "price":
			message = fmt.Sprintf("%s must be an amount with up to two decimal places", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
