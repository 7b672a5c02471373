package schedule

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Event is a confirmed booking rendered as a calendar entry. Start is the
// booking instant; End is Start plus the provider's slot duration.
type Event struct {
	Start       time.Time
	End         time.Time
	Title       string
	Description string
	Location    string
	Timezone    string // provider's IANA zone, used for the .ics DTSTART/DTEND
}

// NewEvent builds a calendar event for a booking slot.
func NewEvent(start time.Time, slot time.Duration, title, description, location, tz string) Event {
	if slot <= 0 {
		slot = time.Hour
	}
	return Event{
		Start:       start,
		End:         start.Add(slot),
		Title:       title,
		Description: description,
		Location:    location,
		Timezone:    tz,
	}
}

// CalendarLinks carries the three add-to-calendar formats for one event.
// All three encode the same start and end instants.
type CalendarLinks struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	ICS     string `json:"ics"`
}

// Links renders the Google render URL, the Outlook deeplink-compose URL and
// the inline .ics data URI for the event.
func Links(e Event) CalendarLinks {
	return CalendarLinks{
		Google:  googleURL(e),
		Outlook: outlookURL(e),
		ICS:     icsDataURI(e),
	}
}

func googleURL(e Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", e.Start.UTC().Format("20060102T150405Z")+"/"+e.End.UTC().Format("20060102T150405Z"))
	q.Set("details", e.Description)
	q.Set("location", e.Location)
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

func outlookURL(e Event) string {
	q := url.Values{}
	q.Set("path", "/calendar/action/compose")
	q.Set("rru", "addevent")
	q.Set("subject", e.Title)
	q.Set("startdt", e.Start.UTC().Format(time.RFC3339))
	q.Set("enddt", e.End.UTC().Format(time.RFC3339))
	q.Set("body", e.Description)
	q.Set("location", e.Location)
	return "https://outlook.live.com/calendar/0/deeplink/compose?" + q.Encode()
}

func icsDataURI(e Event) string {
	loc := loadLocation(e.Timezone)
	tzid := e.Timezone
	if tzid == "" {
		tzid = "UTC"
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//bookly//booking//EN\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "DTSTART;TZID=%s:%s\r\n", tzid, e.Start.In(loc).Format("20060102T150405"))
	fmt.Fprintf(&b, "DTEND;TZID=%s:%s\r\n", tzid, e.End.In(loc).Format("20060102T150405"))
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS(e.Title))
	fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeICS(e.Description))
	fmt.Fprintf(&b, "LOCATION:%s\r\n", escapeICS(e.Location))
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")

	return "data:text/calendar;charset=utf-8," + url.PathEscape(b.String())
}

func escapeICS(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}
