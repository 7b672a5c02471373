package bookingsapi

import (
	"testing"

	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/notifications"
	"bookly-backend/internal/domain/providers"

	"github.com/stretchr/testify/assert"
)

func TestCancelNotification(t *testing.T) {
	b := bookings.Booking{
		ID:           "b-123",
		ServiceType:  "Haircut",
		CustomerName: "Ravi Kumar",
	}
	p := providers.Provider{Username: "salonanita", Name: "Anita's Salon"}

	n := cancelNotification(&b, &p)
	assert.Equal(t, "salonanita", n.Recipient)
	assert.Equal(t, notifications.CategoryGeneral, n.Category)
	assert.Equal(t, "Booking canceled: Haircut by Ravi Kumar", n.Message)
	assert.Equal(t, "/dashboard/bookings/b-123", n.Link)
}
