package bookingsapi

import (
	"testing"
	"time"

	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/providers"

	"github.com/stretchr/testify/assert"
)

func TestBuildConfirmationParams(t *testing.T) {
	meet := "https://meet.google.com/abc-defg-hij"
	b := &bookings.Booking{
		ID:               "bk-1",
		CustomerName:     "Ravi Kumar",
		CustomerEmail:    "ravi@example.com",
		CustomerPhone:    "+919876543210",
		ServiceType:      "Consultation",
		ScheduledAt:      time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		Address:          "Online meeting",
		CustomerTimezone: "Asia/Kolkata",
		MeetLink:         &meet,
	}
	p := &providers.Provider{
		Username: "asha",
		Name:     "Asha Salon",
		Email:    "asha@example.com",
		Settings: providers.Settings{
			Timezone:      "Asia/Kolkata",
			DateFormat:    "DD/MM/YYYY",
			GoogleMapLink: "https://maps.example.com/asha",
		},
	}

	params := BuildConfirmation(b, p, "₹500", "₹500")
	assert.Equal(t, "2024-03-01T10:00:00Z", params.DateTime)
	assert.Equal(t, "asha", params.ProviderUsername)
	assert.Equal(t, "INR", params.CurrencyCode)
	assert.Equal(t, meet, params.GoogleMeetLink)
	assert.Equal(t, "Asia/Kolkata", params.CustomerTimezone)

	q := params.RedirectQuery()
	assert.Equal(t, "Ravi Kumar", q.Get("customerName"))
	assert.Equal(t, "₹500", q.Get("amountPaid"))
	assert.Equal(t, "https://maps.example.com/asha", q.Get("googleMapLink"))
}

func TestBuildConfirmationParams_MissingCustomerTimezoneFallsBackToUTC(t *testing.T) {
	b := &bookings.Booking{ScheduledAt: time.Now()}
	p := &providers.Provider{}

	params := BuildConfirmation(b, p, "", "")
	assert.Equal(t, "UTC", params.CustomerTimezone)

	q := params.RedirectQuery()
	assert.Equal(t, "UTC", q.Get("customerTimezone"))
	// Optional fields stay out of the query entirely when empty.
	_, hasAmount := q["amountPaid"]
	assert.False(t, hasAmount)
	_, hasMeet := q["googleMeetLink"]
	assert.False(t, hasMeet)
}
