package providersapi

import (
	"encoding/json"
	"net/http"

	"bookly-backend/database"
	"bookly-backend/internal/domain/providers"
	"bookly-backend/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /providers/:username
//
// Public profile read by the booking page. Redis read-through: settings and
// subscription workflows invalidate the key when they change the profile.
func GetProviderProfile(c *gin.Context) {
	username := c.Param("username")

	if cached := cache.GetProvider(c.Request.Context(), username); cached != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	var provider providers.Provider
	err := database.DB.
		Preload("Settings.ServiceTypes").
		Preload("Plan").
		First(&provider, "username = ?", username).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load provider"})
		return
	}

	payload, err := json.Marshal(profileDTO(&provider))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render provider"})
		return
	}

	cache.SetProvider(c.Request.Context(), username, string(payload))
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// ProfileDTO is the public subset of a provider: contact and the booking
// page settings, without subscription internals.
type ProfileDTO struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	Timezone      string `json:"timezone"`
	DateFormat    string `json:"dateFormat"`
	SlotMinutes   int    `json:"slotMinutes"`
	ShopAddress   string `json:"shopAddress"`
	GoogleMapLink string `json:"googleMapLink"`

	OnlinePaymentsEnabled bool `json:"onlinePaymentsEnabled"`
	PayLaterEnabled       bool `json:"payLaterEnabled"`

	BlockedSlots []string `json:"blockedSlots"`
	BlockedDates []string `json:"blockedDates"`

	ServiceTypes []ServiceDTO `json:"serviceTypes"`
}

type ServiceDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func profileDTO(p *providers.Provider) ProfileDTO {
	dto := ProfileDTO{
		Username: p.Username,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,

		Timezone:      p.Settings.Timezone,
		DateFormat:    p.Settings.DateFormat,
		SlotMinutes:   p.Settings.SlotMinutes,
		ShopAddress:   p.Settings.ShopAddress,
		GoogleMapLink: p.Settings.GoogleMapLink,

		OnlinePaymentsEnabled: p.Settings.OnlinePaymentsEnabled,
		PayLaterEnabled:       p.Settings.PayLaterEnabled,

		BlockedSlots: p.Settings.BlockedSlots,
		BlockedDates: p.Settings.BlockedDates,

		ServiceTypes: make([]ServiceDTO, 0, len(p.Settings.ServiceTypes)),
	}
	for _, st := range p.Settings.ServiceTypes {
		if !st.Enabled {
			continue
		}
		dto.ServiceTypes = append(dto.ServiceTypes, ServiceDTO{
			Name:     st.Name,
			Price:    st.Price,
			Category: st.Category,
		})
	}
	return dto
}
