package schedule

import (
	"fmt"
	"strings"
	"time"
)

// LocalTimes holds the display strings for one booking instant rendered in
// the provider's and the customer's timezones.
type LocalTimes struct {
	Provider string
	Customer string
}

// FormatLocalTimes renders a booking instant for both parties. An empty or
// unknown timezone falls back to UTC rather than failing the workflow.
func FormatLocalTimes(t time.Time, providerTZ, customerTZ, dateFormat string) LocalTimes {
	return LocalTimes{
		Provider: FormatInZone(t, providerTZ, dateFormat),
		Customer: FormatInZone(t, customerTZ, dateFormat),
	}
}

// FormatInZone renders an instant in one timezone using the provider's
// configured date format, e.g. "01/03/2024, 10:00 AM" for DD/MM/YYYY.
func FormatInZone(t time.Time, tz, dateFormat string) string {
	loc := loadLocation(tz)
	local := t.In(loc)
	return local.Format(dateLayout(dateFormat)) + ", " + local.Format("3:04 PM")
}

func loadLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func dateLayout(dateFormat string) string {
	switch strings.ToUpper(strings.TrimSpace(dateFormat)) {
	case "MM/DD/YYYY":
		return "01/02/2006"
	case "YYYY-MM-DD":
		return "2006-01-02"
	default: // DD/MM/YYYY
		return "02/01/2006"
	}
}

// FormatINR renders an amount in rupees, dropping a zero fraction.
func FormatINR(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("₹%d", int64(amount))
	}
	return fmt.Sprintf("₹%.2f", amount)
}
