package bookingsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() BookingForm {
	return BookingForm{
		CustomerName:     "Ravi Kumar",
		CustomerEmail:    "ravi@example.com",
		CustomerPhone:    "+919876543210",
		ServiceType:      "Haircut",
		DateTime:         "2024-03-01T10:00:00Z",
		PaymentMethod:    "pay_later",
		CustomerTimezone: "Asia/Kolkata",
	}
}

func TestValidateForm_Valid(t *testing.T) {
	f := validForm()
	assert.Empty(t, ValidateForm(&f))
}

func TestValidateForm_FieldErrorsAreMapped(t *testing.T) {
	f := validForm()
	f.CustomerName = ""
	f.CustomerEmail = "not-an-email"
	f.PaymentMethod = "cheque"

	errs := ValidateForm(&f)
	assert.Contains(t, errs, "customerName")
	assert.Contains(t, errs["customerName"], "This field is required")
	assert.Contains(t, errs, "customerEmail")
	assert.Contains(t, errs["customerEmail"], "Must be a valid email address")
	assert.Contains(t, errs, "paymentMethod")
}

func TestValidateForm_RejectsBadTimestamp(t *testing.T) {
	f := validForm()
	f.DateTime = "tomorrow at noon"

	errs := ValidateForm(&f)
	assert.Contains(t, errs, "dateTime")
}

func TestValidateDoorstepAddress_RequiresParts(t *testing.T) {
	f := validForm()

	errs := ValidateDoorstepAddress(&f)
	for _, field := range []string{"flat", "city", "state", "pincode", "country"} {
		assert.Contains(t, errs, field)
		assert.Contains(t, errs[field], "This field is required")
	}
	assert.NotContains(t, errs, "landmark", "landmark is optional")
}

func TestValidateDoorstepAddress_WhitespaceIsEmpty(t *testing.T) {
	f := validForm()
	f.Flat = "  "
	f.City = "Pune"
	f.State = "MH"
	f.Pincode = "411001"
	f.Country = "India"

	errs := ValidateDoorstepAddress(&f)
	assert.Contains(t, errs, "flat")
	assert.Len(t, errs, 1)
}

func TestValidateDoorstepAddress_CompleteAddress(t *testing.T) {
	f := validForm()
	f.Flat = "12B Rose Villa"
	f.Landmark = "Near City Mall"
	f.City = "Pune"
	f.State = "MH"
	f.Pincode = "411001"
	f.Country = "India"

	assert.Empty(t, ValidateDoorstepAddress(&f))
}
