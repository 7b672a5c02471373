package providers

import (
	"bookly-backend/internal/domain/plans"
	"time"
)

type Provider struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;uniqueIndex:idx_providers_username" json:"username"`
	Name     string `json:"name"`
	Email    string `gorm:"not null;uniqueIndex:idx_providers_email" json:"email"`
	Phone    string `json:"phone"`

	Settings Settings `gorm:"foreignKey:ProviderID" json:"settings"`

	PlanID       *uint       `json:"planId"`
	Plan         *plans.Plan `json:"plan,omitempty"`
	PlanExpiry   *time.Time  `gorm:"column:plan_expiry" json:"planExpiry"`
	HasUsedTrial bool        `gorm:"column:has_used_trial" json:"hasUsedTrial"`

	CalendarConnected bool `gorm:"column:calendar_connected" json:"calendarConnected"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Settings struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	ProviderID uint `gorm:"index" json:"-"`

	Timezone    string `gorm:"default:'UTC'" json:"timezone"`
	DateFormat  string `gorm:"default:'DD/MM/YYYY'" json:"dateFormat"`
	SlotMinutes int    `gorm:"default:60" json:"slotMinutes"`

	ShopAddress   string `json:"shopAddress"`
	GoogleMapLink string `json:"googleMapLink"`

	OnlinePaymentsEnabled bool `gorm:"column:online_payments_enabled" json:"onlinePaymentsEnabled"`
	PayLaterEnabled       bool `gorm:"column:pay_later_enabled" json:"payLaterEnabled"`

	// Ordered in storage, deduplicated by the blocking workflow.
	BlockedSlots []string `gorm:"serializer:json" json:"blockedSlots"`
	BlockedDates []string `gorm:"serializer:json" json:"blockedDates"`

	ServiceTypes []ServiceType `gorm:"foreignKey:SettingsID" json:"serviceTypes"`
}

type ServiceType struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	SettingsID uint `gorm:"index" json:"-"`

	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `json:"price"`
	Enabled  bool    `json:"enabled"`
	Category string  `gorm:"default:'shop'" json:"category"` // "doorstep" | "shop" | "online"
}

// Service-type delivery categories
const (
	CategoryDoorstep = "doorstep"
	CategoryShop     = "shop"
	CategoryOnline   = "online"
)

// FindServiceType returns the provider's service type by name, nil if unknown.
func (p *Provider) FindServiceType(name string) *ServiceType {
	for i := range p.Settings.ServiceTypes {
		if p.Settings.ServiceTypes[i].Name == name {
			return &p.Settings.ServiceTypes[i]
		}
	}
	return nil
}

// SlotDuration returns the provider's slot length, defaulting to one hour.
func (s *Settings) SlotDuration() time.Duration {
	if s.SlotMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(s.SlotMinutes) * time.Minute
}
