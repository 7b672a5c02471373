package razorpay

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	rzpsdk "github.com/razorpay/razorpay-go"
)

// Order is the gateway order descriptor returned to the booking page so the
// client can drive the gateway's checkout SDK.
type Order struct {
	ID       string  `json:"id"`
	Amount   int64   `json:"amount"` // minor units (paise)
	Currency string  `json:"currency"`
	Key      string  `json:"key"` // public key id for the client SDK
	Receipt  string  `json:"receipt"`
	AmountIn float64 `json:"-"` // original amount in rupees
}

type Client struct {
	keyID  string
	secret string
	sdk    *rzpsdk.Client
}

func NewClient(keyID, secret string) *Client {
	return &Client{
		keyID:  keyID,
		secret: secret,
		sdk:    rzpsdk.NewClient(keyID, secret),
	}
}

// Secret exposes the shared secret for callback signature verification.
func (c *Client) Secret() string {
	return c.secret
}

// CreateOrder opens a gateway order for the amount in rupees. Amounts are
// converted to paise, currency is fixed to INR and capture is automatic.
func (c *Client) CreateOrder(amount float64) (*Order, error) {
	receipt := NewReceipt(time.Now())
	data := map[string]interface{}{
		"amount":          OrderAmount(amount),
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := c.sdk.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("gateway order response missing id")
	}

	return &Order{
		ID:       id,
		Amount:   OrderAmount(amount),
		Currency: "INR",
		Key:      c.keyID,
		Receipt:  receipt,
		AmountIn: amount,
	}, nil
}

// OrderAmount converts rupees to the gateway's minor units. Rounded, not
// truncated: 19.99 is 1999 paise even though 19.99*100 is 1998.999… in
// floating point.
func OrderAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// NewReceipt derives a receipt id from the current timestamp.
func NewReceipt(now time.Time) string {
	return fmt.Sprintf("rcpt_%d_%s", now.Unix(), uuid.NewString()[:8])
}
