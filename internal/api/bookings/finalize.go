package bookingsapi

import (
	"context"
	"fmt"
	"log"

	"bookly-backend/database"
	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/notifications"
	"bookly-backend/internal/domain/providers"
	"bookly-backend/internal/infra/gcal"
	"bookly-backend/internal/infra/mailer"
	"bookly-backend/internal/infra/razorpay"
	"bookly-backend/internal/schedule"
)

// Shared collaborators, wired once at startup.
var (
	Gateway  *razorpay.Client
	Calendar *gcal.Client
)

func Init(gateway *razorpay.Client, calendar *gcal.Client) {
	Gateway = gateway
	Calendar = calendar
}

// FinalizeAndNotify runs the confirm half of the booking workflow: transition
// to upcoming, best-effort calendar event, persist, provider notification,
// confirmation emails. The caller sets the payment sub-record first. Used by
// the deferred booking path and by the payment verification callback.
func FinalizeAndNotify(ctx context.Context, b *bookings.Booking, p *providers.Provider, amountLabel string) error {
	b.Status = bookings.StatusUpcoming

	st := p.FindServiceType(b.ServiceType)
	online := st != nil && st.Category == providers.CategoryOnline

	ev := schedule.NewEvent(
		b.ScheduledAt,
		p.Settings.SlotDuration(),
		fmt.Sprintf("%s - %s", b.ServiceType, b.CustomerName),
		fmt.Sprintf("Booked by %s (%s, %s)", b.CustomerName, b.CustomerEmail, b.CustomerPhone),
		b.Address,
		p.Settings.Timezone,
	)

	// Calendar is best-effort: an outage must not block confirmation.
	if p.CalendarConnected {
		res := Calendar.CreateEvent(ctx, ev, []string{b.CustomerEmail, p.Email}, online)
		if res.Created {
			b.CalendarEventID = &res.EventID
			if res.MeetLink != "" {
				b.MeetLink = &res.MeetLink
			}
		} else if res.Err != nil {
			log.Printf("calendar event for booking %s failed: %v", b.ID, res.Err)
		}
	}

	if err := database.DB.Save(b).Error; err != nil {
		return fmt.Errorf("failed to persist booking: %w", err)
	}

	notif := notifications.Notification{
		Recipient: p.Username,
		Message:   fmt.Sprintf("New booking: %s by %s", b.ServiceType, b.CustomerName),
		Category:  notifications.CategoryNewBooking,
		Link:      "/dashboard/bookings/" + b.ID,
	}
	if err := database.DB.Create(&notif).Error; err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	sendConfirmationEmails(b, p, schedule.Links(ev), amountLabel)
	return nil
}

func sendConfirmationEmails(b *bookings.Booking, p *providers.Provider, links schedule.CalendarLinks, amountLabel string) {
	times := schedule.FormatLocalTimes(b.ScheduledAt, p.Settings.Timezone, b.CustomerTimezone, p.Settings.DateFormat)

	params := mailer.BookingParams{
		CustomerName: b.CustomerName,
		ProviderName: p.Name,
		ServiceType:  b.ServiceType,
		CustomerTime: times.Customer,
		ProviderTime: times.Provider,
		Address:      b.Address,
		AmountLabel:  amountLabel,

		GoogleCalendarLink: links.Google,
		OutlookLink:        links.Outlook,
		ICSLink:            links.ICS,
	}
	if b.MeetLink != nil {
		params.MeetLink = *b.MeetLink
	}

	subject, body := mailer.BookingConfirmedCustomer(params)
	if err := mailer.Send(b.CustomerEmail, subject, body); err != nil {
		log.Printf("customer confirmation email for booking %s failed: %v", b.ID, err)
	}

	subject, body = mailer.BookingConfirmedProvider(params)
	if err := mailer.Send(p.Email, subject, body); err != nil {
		log.Printf("provider confirmation email for booking %s failed: %v", b.ID, err)
	}
}
