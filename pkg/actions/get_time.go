package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

const timeFormat = "03:04 PM MST"

type getTime struct{}

func NewGetTime() *getTime { return &getTime{} }

func (g *getTime) Name() string { return "get_time" }

func (g *getTime) Description() string {
	return "Returns the current time in the specified IANA timezone, or the system timezone when omitted"
}

func (g *getTime) Parameters() domain.Definition {
	return domain.Definition{
		Properties: map[string]domain.Property{
			"timezone": {Type: domain.String, Description: "IANA timezone name, e.g. Asia/Tokyo"},
		},
	}
}

func (g *getTime) Execute(_ context.Context, params map[string]any) (string, error) {
	loc := time.Local
	if tz := stringParam(params, "timezone"); tz != "" {
		var err error
		if loc, err = time.LoadLocation(tz); err != nil {
			return "", fmt.Errorf("loading timezone %q: %w", tz, err)
		}
	}

	return time.Now().In(loc).Format(timeFormat), nil
}
