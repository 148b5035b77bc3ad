package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	calendarID        = "primary"
	defaultMaxResults = 10
)

type client struct {
	svc *calendar.Service
}

// NewClient builds a read-only Google Calendar client. The OAuth token must
// already exist at tokenPath; there is no interactive consent flow here.
func NewClient(ctx context.Context, credentialsPath, tokenPath string) (*client, error) {
	secrets, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading client secrets: %w", err)
	}

	config, err := google.ConfigFromJSON(secrets, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secrets: %w", err)
	}

	token, err := tokenFromFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("loading oauth token: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	return &client{svc: svc}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding token file: %w", err)
	}
	return &token, nil
}

func (c *client) NextEvent(ctx context.Context) (string, error) {
	events, err := c.svc.Events.List(calendarID).
		TimeMin(time.Now().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("fetching next event: %w", err)
	}

	if len(events.Items) == 0 {
		return "No upcoming events.", nil
	}
	return formatEvents(events.Items), nil
}

func (c *client) Events(ctx context.Context, startTime, endTime string) (string, error) {
	if startTime == "" {
		startTime = time.Now().Format(time.RFC3339)
	}
	if endTime == "" {
		endTime = time.Now().AddDate(0, 0, 7).Format(time.RFC3339)
	}

	events, err := c.svc.Events.List(calendarID).
		TimeMin(startTime).
		TimeMax(endTime).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(defaultMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("fetching events: %w", err)
	}

	if len(events.Items) == 0 {
		return "No events in this timeframe.", nil
	}
	return formatEvents(events.Items), nil
}

func (c *client) Search(ctx context.Context, query string) (string, error) {
	events, err := c.svc.Events.List(calendarID).
		Q(query).
		TimeMin(time.Now().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(defaultMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("searching events: %w", err)
	}

	if len(events.Items) == 0 {
		return fmt.Sprintf("No events matching %q.", query), nil
	}
	return formatEvents(events.Items), nil
}

func formatEvents(items []*calendar.Event) string {
	lines := make([]string, 0, len(items))
	for _, e := range items {
		lines = append(lines, fmt.Sprintf("%s at %s", e.Summary, eventStart(e)))
	}
	return strings.Join(lines, "; ")
}

func eventStart(e *calendar.Event) string {
	if e.Start == nil {
		return "unknown time"
	}
	// All-day events carry only a date.
	start, _ := lo.Coalesce(e.Start.DateTime, e.Start.Date)
	return start
}
