package razorpay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderAmount_MinorUnits(t *testing.T) {
	assert.Equal(t, int64(50000), OrderAmount(500))
	assert.Equal(t, int64(49950), OrderAmount(499.5))
	assert.Equal(t, int64(1999), OrderAmount(19.99), "amounts without an exact float representation must round, not truncate")
	assert.Equal(t, int64(2901), OrderAmount(29.01))
	assert.Equal(t, int64(0), OrderAmount(0))
}

func TestNewReceipt(t *testing.T) {
	now := time.Unix(1710000000, 0)
	r := NewReceipt(now)
	assert.True(t, strings.HasPrefix(r, "rcpt_1710000000_"))
	assert.NotEqual(t, r, NewReceipt(now), "receipts must be unique per call")
}
