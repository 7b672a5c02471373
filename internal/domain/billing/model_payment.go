package billing

import (
	"bookly-backend/internal/domain/plans"
	"time"
)

// Payment is the immutable ledger record written after money moved. For
// booking payments it is created only once the callback signature verified.
type Payment struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ProviderUsername string `gorm:"index" json:"providerUsername"`

	BookingID *string     `json:"bookingId,omitempty"`
	PlanID    *uint       `json:"planId,omitempty"`
	Plan      *plans.Plan `json:"plan,omitempty"`

	OrderID   string  `json:"orderId"`
	PaymentID string  `gorm:"uniqueIndex:idx_payments_payment_id" json:"paymentId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
