package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"airseat/pkg/logger"
	"airseat/pkg/model"

	"github.com/go-playground/validator/v10"
)

// Seat identifiers look like "3A" or "12C": row number then cabin letter.
var seatCodeRegex = regexp.MustCompile(`^[1-9][0-9]?[A-K]$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("seat_code", validateSeatCode); err != nil {
		log.Fatal("Failed to register 'seat_code' validator",
			"error", err,
		)
	}

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateSeatCode(fl validator.FieldLevel) bool {
	return seatCodeRegex.MatchString(fl.Field().String())
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	translated := make(ValidationErrors, 0, len(errs))
	for _, fieldErr := range errs {
		translated = append(translated, ValidationError{
			Field:   fieldErr.Field(),
			Message: messageForTag(fieldErr),
		})
	}
	return translated
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "seat_code":
		return "must be a seat code like 12C"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fieldErr.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fieldErr.Param())
	case "alphanum":
		return "must contain only letters and digits"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fieldErr.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fieldErr.Tag())
	}
}
