package actions

import (
	"context"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type CalendarProvider interface {
	NextEvent(ctx context.Context) (string, error)
	Events(ctx context.Context, startTime, endTime string) (string, error)
	Search(ctx context.Context, query string) (string, error)
}

type calendarNextEvent struct {
	provider CalendarProvider
}

func NewCalendarNextEvent(provider CalendarProvider) *calendarNextEvent {
	return &calendarNextEvent{provider: provider}
}

func (c *calendarNextEvent) Name() string { return "calendar_next_event" }

func (c *calendarNextEvent) Description() string {
	return "Returns the next upcoming calendar event"
}

func (c *calendarNextEvent) Parameters() domain.Definition { return domain.Definition{} }

func (c *calendarNextEvent) Execute(ctx context.Context, _ map[string]any) (string, error) {
	return c.provider.NextEvent(ctx)
}

type calendarGetEvents struct {
	provider CalendarProvider
}

func NewCalendarGetEvents(provider CalendarProvider) *calendarGetEvents {
	return &calendarGetEvents{provider: provider}
}

func (c *calendarGetEvents) Name() string { return "calendar_get_events" }

func (c *calendarGetEvents) Description() string {
	return "Returns calendar events within a timeframe"
}

func (c *calendarGetEvents) Parameters() domain.Definition {
	return domain.Definition{
		Properties: map[string]domain.Property{
			"start_time": {Type: domain.String, Description: "RFC 3339 start of the timeframe"},
			"end_time":   {Type: domain.String, Description: "RFC 3339 end of the timeframe"},
		},
	}
}

func (c *calendarGetEvents) Execute(ctx context.Context, params map[string]any) (string, error) {
	return c.provider.Events(ctx, stringParam(params, "start_time"), stringParam(params, "end_time"))
}

type calendarSearch struct {
	provider CalendarProvider
}

func NewCalendarSearch(provider CalendarProvider) *calendarSearch {
	return &calendarSearch{provider: provider}
}

func (c *calendarSearch) Name() string { return "calendar_search" }

func (c *calendarSearch) Description() string {
	return "Searches calendar events by text"
}

func (c *calendarSearch) Parameters() domain.Definition {
	return domain.Definition{
		Properties: map[string]domain.Property{
			"query": {Type: domain.String, Description: "Text to search for"},
		},
		Required: []string{"query"},
	}
}

func (c *calendarSearch) Execute(ctx context.Context, params map[string]any) (string, error) {
	return c.provider.Search(ctx, stringParam(params, "query"))
}
