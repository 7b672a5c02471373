package bookings

import "time"

type Booking struct {
	ID               string `gorm:"primaryKey" json:"id"`
	ProviderUsername string `gorm:"index;not null" json:"providerUsername"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	ServiceType      string    `json:"serviceType"`
	ScheduledAt      time.Time `json:"scheduledAt"` // stored UTC
	Address          string    `json:"address"`
	CustomerTimezone string    `json:"customerTimezone"`

	Status string `gorm:"default:'pending'" json:"status"` // "pending" | "upcoming" | "canceled"

	Payment Payment `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	CalendarEventID *string `json:"calendarEventId,omitempty"`
	MeetLink        *string `json:"meetLink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Payment is the mutable sub-record embedded in a booking. The immutable
// ledger record lives in the billing package.
type Payment struct {
	OrderID   string  `json:"orderId"`
	PaymentID string  `json:"paymentId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"` // "pending" | "paid"
}

// Booking statuses
const (
	StatusPending  = "pending"
	StatusUpcoming = "upcoming"
	StatusCanceled = "canceled"
)

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)
