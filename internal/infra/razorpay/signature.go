package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the callback signature the gateway sends with a captured
// payment: HMAC-SHA256 over "orderId|paymentId", hex encoded.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a callback signature by recomputation and exact
// string comparison. A mismatch is an expected negative outcome of an
// untrusted callback, not an error.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	return Sign(secret, orderID, paymentID) == signature
}
