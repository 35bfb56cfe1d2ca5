package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Staff role validation
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "ADMIN", "STAFF")
	})

	// Booking time slot validation
	validate.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "MORNING", "EVENING")
	})

	// Booking status validation
	validate.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(),
			"INQUIRY", "RESERVED", "DEPOSIT_PAID", "CONFIRMED", "FULLY_PAID", "CANCELLED", "")
	})

	// Payment method validation
	validate.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "CASH", "CARD", "BANK_TRANSFER", "CHECK")
	})

	// Payment type validation
	validate.RegisterValidation("payment_type", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "DEPOSIT", "PARTIAL", "FULL")
	})

	// Display language validation
	validate.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "EN", "AR", "")
	})
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "role":
			errors[field] = "Invalid role. Must be: ADMIN or STAFF"
		case "time_slot":
			errors[field] = "Invalid time slot. Must be: MORNING or EVENING"
		case "booking_status":
			errors[field] = "Invalid booking status"
		case "payment_method":
			errors[field] = "Invalid payment method. Must be: CASH, CARD, BANK_TRANSFER, or CHECK"
		case "payment_type":
			errors[field] = "Invalid payment type. Must be: DEPOSIT, PARTIAL, or FULL"
		case "language":
			errors[field] = "Invalid language. Must be: EN or AR"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
