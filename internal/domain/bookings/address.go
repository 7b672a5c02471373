package bookings

import (
	"fmt"

	"bookly-backend/internal/domain/providers"
)

// AddressParts holds the doorstep address fields submitted with a booking.
type AddressParts struct {
	Flat     string
	Landmark string
	City     string
	State    string
	Pincode  string
	Country  string
}

// OnlineMeetingAddress is the placeholder shown for online services before a
// meeting link exists.
const OnlineMeetingAddress = "Online meeting"

// AssembleAddress builds the delivery address for a booking from the service
// category: doorstep services assemble the customer's address parts, shop
// services use the provider's fixed shop address, online services get a
// placeholder.
func AssembleAddress(category string, parts AddressParts, shopAddress string) string {
	switch category {
	case providers.CategoryDoorstep:
		return fmt.Sprintf("%s, %s, %s, %s - %s, %s",
			parts.Flat, parts.Landmark, parts.City, parts.State, parts.Pincode, parts.Country)
	case providers.CategoryOnline:
		return OnlineMeetingAddress
	default: // shop
		return shopAddress
	}
}
