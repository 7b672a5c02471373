package bookingsapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BookingForm is the raw submission from the public booking page.
type BookingForm struct {
	CustomerName  string `form:"customerName" validate:"required,min=2,max=120"`
	CustomerEmail string `form:"customerEmail" validate:"required,email"`
	CustomerPhone string `form:"customerPhone" validate:"required,min=7,max=20"`

	ServiceType string `form:"serviceType" validate:"required"`
	DateTime    string `form:"dateTime" validate:"required"` // RFC3339

	// Doorstep address fields, required only for doorstep services.
	Flat     string `form:"flat"`
	Landmark string `form:"landmark"`
	City     string `form:"city"`
	State    string `form:"state"`
	Pincode  string `form:"pincode"`
	Country  string `form:"country"`

	PaymentMethod    string `form:"paymentMethod" validate:"omitempty,oneof=online pay_later"`
	CustomerTimezone string `form:"customerTimezone"`
}

var validate = validator.New()

// ValidateForm returns a field → messages map; an empty map means valid.
// Validation never has side effects.
func ValidateForm(f *BookingForm) map[string][]string {
	errs := map[string][]string{}

	if err := validate.Struct(f); err != nil {
		var invalid validator.ValidationErrors
		if ok := asValidationErrors(err, &invalid); ok {
			for _, fe := range invalid {
				field := formFieldName(fe.Field())
				errs[field] = append(errs[field], fieldMessage(fe))
			}
		} else {
			errs["_form"] = append(errs["_form"], "Invalid submission")
		}
	}

	if f.DateTime != "" {
		if _, err := time.Parse(time.RFC3339, f.DateTime); err != nil {
			errs["dateTime"] = append(errs["dateTime"], "Must be an ISO 8601 timestamp")
		}
	}

	return errs
}

// ValidateDoorstepAddress requires the address parts a doorstep visit needs.
// Called once the service's category is known; landmark stays optional.
func ValidateDoorstepAddress(f *BookingForm) map[string][]string {
	errs := map[string][]string{}

	required := []struct {
		field string
		value string
	}{
		{"flat", f.Flat},
		{"city", f.City},
		{"state", f.State},
		{"pincode", f.Pincode},
		{"country", f.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = append(errs[r.field], "This field is required")
		}
	}

	return errs
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func formFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	}
	return "Invalid value"
}
