package bookingsapi

// PaymentPath is the branch a submitted booking takes after persistence.
type PaymentPath int

const (
	// PathOnline: create a gateway order, keep the booking pending until the
	// payment callback verifies.
	PathOnline PaymentPath = iota
	// PathDeferred: confirm immediately; payment stays pending (free service
	// or pay-on-delivery).
	PathDeferred
	// PathUnavailable: the service costs money but the provider accepts
	// neither online payment for this request nor pay-later. The booking must
	// be rejected, otherwise it would be confirmed with a payment nobody can
	// ever collect.
	PathUnavailable
)

// DecidePaymentPath picks the branch from the service price, the provider's
// payment settings and the customer's choice. Online capture requires all
// three: a positive price, online payments enabled, and the customer choosing
// online. Free services always confirm immediately; paid services may only
// defer when the provider has pay-later enabled.
func DecidePaymentPath(price float64, onlineEnabled, payLaterEnabled bool, method string) PaymentPath {
	if price <= 0 {
		return PathDeferred
	}
	if onlineEnabled && method == "online" {
		return PathOnline
	}
	if payLaterEnabled {
		return PathDeferred
	}
	return PathUnavailable
}
