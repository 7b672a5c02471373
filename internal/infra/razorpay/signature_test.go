package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature_RoundTrip(t *testing.T) {
	sig := Sign("secret", "order_123", "pay_456")
	assert.True(t, VerifySignature("secret", "order_123", "pay_456", sig))
}

func TestVerifySignature_RejectsMutations(t *testing.T) {
	secret := "secret"
	orderID := "order_123"
	paymentID := "pay_456"
	sig := Sign(secret, orderID, paymentID)

	// Flip one character of each input in turn.
	assert.False(t, VerifySignature(secret, "order_124", paymentID, sig))
	assert.False(t, VerifySignature(secret, orderID, "pay_457", sig))

	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	assert.False(t, VerifySignature(secret, orderID, paymentID, string(mutated)))

	assert.False(t, VerifySignature("other-secret", orderID, paymentID, sig))
	assert.False(t, VerifySignature(secret, orderID, paymentID, ""))
}
