package schedule

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_EndIsStartPlusSlot(t *testing.T) {
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	e := NewEvent(start, 30*time.Minute, "Haircut", "", "", "Asia/Kolkata")
	assert.Equal(t, start.Add(30*time.Minute), e.End)

	// Zero slot falls back to one hour.
	e = NewEvent(start, 0, "Haircut", "", "", "Asia/Kolkata")
	assert.Equal(t, start.Add(time.Hour), e.End)
}

func TestLinks_AllFormatsEncodeSameInstants(t *testing.T) {
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	e := NewEvent(start, time.Hour, "Haircut with Asha", "Booking for Ravi", "12 MG Road", "Asia/Kolkata")
	links := Links(e)

	// Google: UTC basic format pair.
	gu, err := url.Parse(links.Google)
	require.NoError(t, err)
	assert.Equal(t, "20240301T100000Z/20240301T110000Z", gu.Query().Get("dates"))

	// Outlook: RFC3339 UTC.
	ou, err := url.Parse(links.Outlook)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T10:00:00Z", ou.Query().Get("startdt"))
	assert.Equal(t, "2024-03-01T11:00:00Z", ou.Query().Get("enddt"))

	// ICS: provider-local wall time with TZID (IST = UTC+5:30).
	raw, err := url.PathUnescape(strings.TrimPrefix(links.ICS, "data:text/calendar;charset=utf-8,"))
	require.NoError(t, err)
	assert.Contains(t, raw, "DTSTART;TZID=Asia/Kolkata:20240301T153000")
	assert.Contains(t, raw, "DTEND;TZID=Asia/Kolkata:20240301T163000")
	assert.Contains(t, raw, "SUMMARY:Haircut with Asha")
	assert.Contains(t, raw, "BEGIN:VEVENT")
}

func TestICS_EscapesSpecials(t *testing.T) {
	start := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	e := NewEvent(start, time.Hour, "Cut, color; style", "", "Shop, Lane 2", "UTC")
	raw, err := url.PathUnescape(strings.TrimPrefix(Links(e).ICS, "data:text/calendar;charset=utf-8,"))
	require.NoError(t, err)
	assert.Contains(t, raw, `SUMMARY:Cut\, color\; style`)
	assert.Contains(t, raw, `LOCATION:Shop\, Lane 2`)
}

func TestFormatInZone(t *testing.T) {
	instant := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "01/03/2024, 3:30 PM", FormatInZone(instant, "Asia/Kolkata", "DD/MM/YYYY"))
	assert.Equal(t, "03/01/2024, 10:00 AM", FormatInZone(instant, "", "MM/DD/YYYY"))
	// Unknown zone falls back to UTC.
	assert.Equal(t, "2024-03-01, 10:00 AM", FormatInZone(instant, "Mars/Olympus", "YYYY-MM-DD"))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹500", FormatINR(500))
	assert.Equal(t, "₹499.50", FormatINR(499.5))
	assert.Equal(t, "₹0", FormatINR(0))
}
