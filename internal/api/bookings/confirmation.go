package bookingsapi

import (
	"net/url"
	"time"

	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/providers"
)

// ConfirmationParams is everything a confirmation view needs to render,
// whether delivered as redirect query parameters (deferred path) or inline in
// the order response (online path, rendered after the callback verifies).
type ConfirmationParams struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	ServiceType string `json:"serviceType"`
	DateTime    string `json:"dateTime"` // ISO, UTC

	ProviderName     string `json:"providerName"`
	ProviderEmail    string `json:"providerEmail"`
	ProviderUsername string `json:"providerUsername"`

	Address       string `json:"address,omitempty"`
	GoogleMapLink string `json:"googleMapLink,omitempty"`

	DateFormat       string `json:"dateFormat"`
	Timezone         string `json:"timezone"`
	CustomerTimezone string `json:"customerTimezone"`

	CurrencyCode   string `json:"currencyCode"`
	GoogleMeetLink string `json:"googleMeetLink,omitempty"`
	AmountPaid     string `json:"amountPaid,omitempty"`
	TotalAmount    string `json:"totalAmount,omitempty"`
}

// BuildConfirmation collects the params for a booking's confirmation view.
// The payment verification workflow reuses it after the callback verifies.
func BuildConfirmation(b *bookings.Booking, p *providers.Provider, amountPaid, totalAmount string) ConfirmationParams {
	params := ConfirmationParams{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,

		ServiceType: b.ServiceType,
		DateTime:    b.ScheduledAt.UTC().Format(time.RFC3339),

		ProviderName:     p.Name,
		ProviderEmail:    p.Email,
		ProviderUsername: p.Username,

		Address:       b.Address,
		GoogleMapLink: p.Settings.GoogleMapLink,

		DateFormat:       p.Settings.DateFormat,
		Timezone:         p.Settings.Timezone,
		CustomerTimezone: b.CustomerTimezone,

		CurrencyCode: "INR",
		AmountPaid:   amountPaid,
		TotalAmount:  totalAmount,
	}
	if params.CustomerTimezone == "" {
		params.CustomerTimezone = "UTC"
	}
	if b.MeetLink != nil {
		params.GoogleMeetLink = *b.MeetLink
	}
	return params
}

// RedirectQuery renders the params as confirmation-view query parameters.
func (p ConfirmationParams) RedirectQuery() url.Values {
	q := url.Values{}
	q.Set("customerName", p.CustomerName)
	q.Set("customerEmail", p.CustomerEmail)
	q.Set("customerPhone", p.CustomerPhone)
	q.Set("serviceType", p.ServiceType)
	q.Set("dateTime", p.DateTime)
	q.Set("providerName", p.ProviderName)
	q.Set("providerEmail", p.ProviderEmail)
	q.Set("providerUsername", p.ProviderUsername)
	q.Set("dateFormat", p.DateFormat)
	q.Set("timezone", p.Timezone)
	q.Set("customerTimezone", p.CustomerTimezone)
	q.Set("currencyCode", p.CurrencyCode)
	if p.Address != "" {
		q.Set("address", p.Address)
	}
	if p.GoogleMapLink != "" {
		q.Set("googleMapLink", p.GoogleMapLink)
	}
	if p.GoogleMeetLink != "" {
		q.Set("googleMeetLink", p.GoogleMeetLink)
	}
	if p.AmountPaid != "" {
		q.Set("amountPaid", p.AmountPaid)
	}
	if p.TotalAmount != "" {
		q.Set("totalAmount", p.TotalAmount)
	}
	return q
}
