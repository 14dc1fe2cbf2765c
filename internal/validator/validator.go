package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	seatLabelRgx  = regexp.MustCompile(`^[A-Za-z][1-9][0-9]?$`)
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("seat_label", validateSeatLabel)
	validator.RegisterValidation("payment_method", validatePaymentMethod)
	validator.RegisterValidation("price", validatePrice)

	return validator
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRgx.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch domain.PaymentMethod(strings.ToLower(fl.Field().String())) {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodUPI:
		return true
	}

	return false
}

func validatePrice(fl validator.FieldLevel) bool {
	price, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return price.IsPositive()
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must have at least %s elements or characters", err.Param())
	case "max":
		return fmt.Sprintf("must have at most %s elements or characters", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "url":
		return "must be a valid URL"
	case "seat_label":
		return "must be a seat label like A1 or C12"
	case "payment_method":
		return "must be one of: cash, card, upi"
	case "price":
		return "must be a positive decimal amount"
	case "password":
		return "must be 8-25 characters long and include at least one uppercase letter, one lowercase letter, " +
			"one number, and one special character (!@#$%^&*)."
	default:
		return "is invalid"
	}
}
