package actions

import (
	"context"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type getCurrentTimezone struct{}

func NewGetCurrentTimezone() *getCurrentTimezone { return &getCurrentTimezone{} }

func (g *getCurrentTimezone) Name() string { return "get_current_timezone" }

func (g *getCurrentTimezone) Description() string {
	return "Returns the system's current timezone"
}

func (g *getCurrentTimezone) Parameters() domain.Definition { return domain.Definition{} }

func (g *getCurrentTimezone) Execute(context.Context, map[string]any) (string, error) {
	zone, _ := time.Now().Zone()
	return zone, nil
}
