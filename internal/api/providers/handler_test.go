package providersapi

import (
	"testing"

	"bookly-backend/internal/domain/providers"

	"github.com/stretchr/testify/assert"
)

func TestProfileDTO_HidesDisabledServicesAndSubscription(t *testing.T) {
	p := &providers.Provider{
		Username:     "asha",
		Name:         "Asha Salon",
		Email:        "asha@example.com",
		HasUsedTrial: true,
		Settings: providers.Settings{
			Timezone:    "Asia/Kolkata",
			DateFormat:  "DD/MM/YYYY",
			SlotMinutes: 45,
			ServiceTypes: []providers.ServiceType{
				{Name: "Haircut", Price: 500, Enabled: true, Category: providers.CategoryShop},
				{Name: "Retired", Price: 900, Enabled: false, Category: providers.CategoryShop},
			},
			BlockedSlots: []string{"2024-03-01T10:00:00Z"},
		},
	}

	dto := profileDTO(p)
	assert.Equal(t, "asha", dto.Username)
	assert.Equal(t, 45, dto.SlotMinutes)
	assert.Len(t, dto.ServiceTypes, 1)
	assert.Equal(t, "Haircut", dto.ServiceTypes[0].Name)
	assert.Equal(t, []string{"2024-03-01T10:00:00Z"}, dto.BlockedSlots)
}
