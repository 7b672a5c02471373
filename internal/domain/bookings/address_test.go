package bookings

import (
	"testing"

	"bookly-backend/internal/domain/providers"

	"github.com/stretchr/testify/assert"
)

func TestAssembleAddress_Doorstep(t *testing.T) {
	parts := AddressParts{
		Flat:     "14B Rose Villa",
		Landmark: "Near City Mall",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
		Country:  "India",
	}
	got := AssembleAddress(providers.CategoryDoorstep, parts, "ignored")
	assert.Equal(t, "14B Rose Villa, Near City Mall, Pune, Maharashtra - 411001, India", got)
}

func TestAssembleAddress_Shop(t *testing.T) {
	got := AssembleAddress(providers.CategoryShop, AddressParts{}, "12 MG Road, Bengaluru")
	assert.Equal(t, "12 MG Road, Bengaluru", got)
}

func TestAssembleAddress_Online(t *testing.T) {
	got := AssembleAddress(providers.CategoryOnline, AddressParts{}, "ignored")
	assert.Equal(t, OnlineMeetingAddress, got)
}
