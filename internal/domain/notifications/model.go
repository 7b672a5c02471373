package notifications

import "time"

// RecipientAdmin is the reserved recipient for platform-level notifications.
const RecipientAdmin = "admin"

// Notification categories
const (
	CategoryNewBooking = "new_booking"
	CategoryGeneral    = "general"
)

// Notification is append-only: rows are created and listed, never mutated.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Recipient string    `gorm:"index;not null" json:"recipient"` // provider username or "admin"
	Message   string    `json:"message"`
	Category  string    `gorm:"default:'general'" json:"category"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}
