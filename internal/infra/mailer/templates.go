package mailer

import "fmt"

// BookingParams are the structured fields every booking email renders from.
// Times arrive pre-formatted in the right zone for each recipient.
type BookingParams struct {
	CustomerName string
	ProviderName string
	ServiceType  string
	CustomerTime string
	ProviderTime string
	Address      string
	MeetLink     string
	AmountLabel  string // "₹500" / "₹500 (to be paid)" / empty for free services

	// Add-to-calendar links, customer email only.
	GoogleCalendarLink string
	OutlookLink        string
	ICSLink            string
}

func BookingConfirmedCustomer(p BookingParams) (subject, body string) {
	subject = fmt.Sprintf("Booking confirmed: %s with %s", p.ServiceType, p.ProviderName)
	body = fmt.Sprintf("Hi %s,\n\nYour %s booking with %s is confirmed for %s.\n",
		p.CustomerName, p.ServiceType, p.ProviderName, p.CustomerTime)
	if p.Address != "" {
		body += fmt.Sprintf("Location: %s\n", p.Address)
	}
	if p.MeetLink != "" {
		body += fmt.Sprintf("Join online: %s\n", p.MeetLink)
	}
	if p.AmountLabel != "" {
		body += fmt.Sprintf("Amount: %s\n", p.AmountLabel)
	}
	if p.GoogleCalendarLink != "" {
		body += fmt.Sprintf("\nAdd to your calendar:\nGoogle: %s\nOutlook: %s\nApple/ICS: %s\n",
			p.GoogleCalendarLink, p.OutlookLink, p.ICSLink)
	}
	body += "\nSee you there!"
	return subject, body
}

func BookingConfirmedProvider(p BookingParams) (subject, body string) {
	subject = fmt.Sprintf("New booking: %s at %s", p.ServiceType, p.ProviderTime)
	body = fmt.Sprintf("%s booked %s for %s.\n", p.CustomerName, p.ServiceType, p.ProviderTime)
	if p.Address != "" {
		body += fmt.Sprintf("Location: %s\n", p.Address)
	}
	if p.AmountLabel != "" {
		body += fmt.Sprintf("Amount: %s\n", p.AmountLabel)
	}
	return subject, body
}

func BookingCanceledCustomer(p BookingParams) (subject, body string) {
	subject = fmt.Sprintf("Booking canceled: %s with %s", p.ServiceType, p.ProviderName)
	body = fmt.Sprintf("Hi %s,\n\nYour %s booking with %s for %s has been canceled.\n",
		p.CustomerName, p.ServiceType, p.ProviderName, p.CustomerTime)
	return subject, body
}

func BookingCanceledProvider(p BookingParams) (subject, body string) {
	subject = fmt.Sprintf("Booking canceled: %s at %s", p.ServiceType, p.ProviderTime)
	body = fmt.Sprintf("The %s booking by %s for %s was canceled.\n",
		p.ServiceType, p.CustomerName, p.ProviderTime)
	return subject, body
}

func BookingRescheduledCustomer(p BookingParams) (subject, body string) {
	subject = fmt.Sprintf("Booking rescheduled: %s with %s", p.ServiceType, p.ProviderName)
	body = fmt.Sprintf("Hi %s,\n\nYour %s booking with %s has moved to %s.\n",
		p.CustomerName, p.ServiceType, p.ProviderName, p.CustomerTime)
	return subject, body
}

func BookingRescheduledProvider(p BookingParams) (subject, body string) {
	subject = fmt.Sprintf("Booking rescheduled: %s now at %s", p.ServiceType, p.ProviderTime)
	body = fmt.Sprintf("The %s booking by %s has moved to %s.\n",
		p.ServiceType, p.CustomerName, p.ProviderTime)
	return subject, body
}

func SubscriptionPurchased(providerName, planName, expiryLabel string) (subject, body string) {
	subject = fmt.Sprintf("Your %s plan is active", planName)
	body = fmt.Sprintf("Hi %s,\n\nYour %s subscription is active and valid until %s.\n\nThanks for subscribing!",
		providerName, planName, expiryLabel)
	return subject, body
}
