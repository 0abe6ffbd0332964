package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/magscene/magsav-api/internal/domain"
)

const eventSource = "MAGSAV"

type eventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type extendedProperties struct {
	Private map[string]string `json:"private,omitempty"`
}

type calendarEvent struct {
	ID                 string              `json:"id,omitempty"`
	Summary            string              `json:"summary"`
	Description        string              `json:"description,omitempty"`
	Location           string              `json:"location,omitempty"`
	Start              eventDateTime       `json:"start"`
	End                eventDateTime       `json:"end"`
	Status             string              `json:"status,omitempty"`
	ExtendedProperties *extendedProperties `json:"extendedProperties,omitempty"`
}

// CalendarEvent is an event read back from Google Calendar.
type CalendarEvent struct {
	ID              string `json:"id"`
	Summary         string `json:"summary"`
	Location        string `json:"location,omitempty"`
	Start           string `json:"start"`
	End             string `json:"end"`
	PlanificationID uint   `json:"planification_id,omitempty"`
}

type CalendarClient struct {
	api        *apiClient
	baseURL    string
	calendarID string
	loc        *time.Location
}

func newCalendarClient(api *apiClient, baseURL, calendarID string, loc *time.Location) *CalendarClient {
	if calendarID == "" {
		calendarID = domain.DefaultCalendrier
	}
	if loc == nil {
		loc = time.UTC
	}

	return &CalendarClient{
		api:        api,
		baseURL:    strings.TrimRight(baseURL, "/"),
		calendarID: calendarID,
		loc:        loc,
	}
}

func (c *CalendarClient) eventsURL() string {
	return c.baseURL + "/calendars/" + url.PathEscape(c.calendarID) + "/events"
}

func (c *CalendarClient) Ping(ctx context.Context) error {
	return c.api.do(ctx, http.MethodGet, c.baseURL+"/calendars/"+url.PathEscape(c.calendarID), nil, nil)
}

func (c *CalendarClient) buildEvent(p domain.Planification) (calendarEvent, error) {
	start, err := p.Debut(c.loc)
	if err != nil {
		return calendarEvent{}, err
	}
	end, err := p.Fin(c.loc)
	if err != nil {
		return calendarEvent{}, err
	}

	return calendarEvent{
		Summary:     p.EventTitle(),
		Description: p.EventDescription(),
		Location:    p.LieuIntervention,
		Start:       eventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: c.loc.String()},
		End:         eventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: c.loc.String()},
		ExtendedProperties: &extendedProperties{Private: map[string]string{
			"source":           eventSource,
			"planification_id": strconv.FormatUint(uint64(p.ID), 10),
		}},
	}, nil
}

// CreateEvent inserts the planification and returns the Google event id.
func (c *CalendarClient) CreateEvent(ctx context.Context, p domain.Planification) (string, error) {
	event, err := c.buildEvent(p)
	if err != nil {
		return "", err
	}

	var created calendarEvent
	if err = c.api.do(ctx, http.MethodPost, c.eventsURL(), event, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("calendar returned no event id")
	}

	return created.ID, nil
}

func (c *CalendarClient) UpdateEvent(ctx context.Context, p domain.Planification) error {
	event, err := c.buildEvent(p)
	if err != nil {
		return err
	}

	return c.api.do(ctx, http.MethodPut, c.eventsURL()+"/"+url.PathEscape(p.GoogleEventID), event, nil)
}

// DeleteEvent removes the event. An event already gone is not an error.
func (c *CalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.api.do(ctx, http.MethodDelete, c.eventsURL()+"/"+url.PathEscape(eventID), nil, nil)
	if err != nil && IsNotFound(err) {
		return nil
	}

	return err
}

// ListEvents returns the MAGSAV events starting after since.
func (c *CalendarClient) ListEvents(ctx context.Context, since time.Time) ([]CalendarEvent, error) {
	var events []CalendarEvent

	pageToken := ""
	for {
		q := url.Values{}
		q.Set("timeMin", since.Format(time.RFC3339))
		q.Set("singleEvents", "true")
		q.Set("orderBy", "startTime")
		q.Set("privateExtendedProperty", "source="+eventSource)
		q.Set("maxResults", "250")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var page struct {
			Items         []calendarEvent `json:"items"`
			NextPageToken string          `json:"nextPageToken"`
		}
		if err := c.api.do(ctx, http.MethodGet, c.eventsURL()+"?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, toCalendarEvent(item))
		}

		if page.NextPageToken == "" {
			return events, nil
		}
		pageToken = page.NextPageToken
	}
}

func toCalendarEvent(e calendarEvent) CalendarEvent {
	event := CalendarEvent{
		ID:       e.ID,
		Summary:  e.Summary,
		Location: e.Location,
		Start:    e.Start.DateTime,
		End:      e.End.DateTime,
	}
	if event.Start == "" {
		event.Start = e.Start.Date
	}
	if event.End == "" {
		event.End = e.End.Date
	}
	if e.ExtendedProperties != nil {
		if id, err := strconv.ParseUint(e.ExtendedProperties.Private["planification_id"], 10, 64); err == nil {
			event.PlanificationID = uint(id)
		}
	}

	return event
}
