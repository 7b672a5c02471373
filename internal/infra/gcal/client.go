package gcal

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"bookly-backend/internal/schedule"

	"github.com/google/uuid"
)

// Result makes the best-effort contract explicit: event creation either
// produced an event or was unavailable, and unavailability is data the
// caller logs and moves past, never an error that aborts a booking.
type Result struct {
	Created  bool
	EventID  string
	MeetLink string
	Err      error
}

// Unavailable wraps a failure (or absence of configuration) as a non-fatal result.
func Unavailable(err error) Result {
	return Result{Created: false, Err: err}
}

type Client struct {
	svc        *calendar.Service
	calendarID string
}

// NewClient builds a calendar client from service-account JSON. Empty
// credentials yield a nil client, which is valid and always Unavailable.
func NewClient(ctx context.Context, credentialsJSON, calendarID string) (*Client, error) {
	if credentialsJSON == "" {
		return nil, nil
	}

	creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("calendar service init failed: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{svc: svc, calendarID: calendarID}, nil
}

// CreateEvent inserts a booking slot into the provider's calendar with a Meet
// link requested for online services.
func (c *Client) CreateEvent(ctx context.Context, ev schedule.Event, attendeeEmails []string, withMeet bool) Result {
	if c == nil || c.svc == nil {
		return Unavailable(nil)
	}

	event := &calendar.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format("2006-01-02T15:04:05Z07:00"),
			TimeZone: ev.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format("2006-01-02T15:04:05Z07:00"),
			TimeZone: ev.Timezone,
		},
	}
	for _, email := range attendeeEmails {
		if email == "" {
			continue
		}
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	if withMeet {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		}
	}

	call := c.svc.Events.Insert(c.calendarID, event).Context(ctx)
	if withMeet {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		return Unavailable(err)
	}

	res := Result{Created: true, EventID: created.Id, MeetLink: created.HangoutLink}
	if res.MeetLink == "" && created.ConferenceData != nil {
		for _, ep := range created.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				res.MeetLink = ep.Uri
				break
			}
		}
	}
	return res
}
