package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

// No geolocation source is available; the timezone is the only hint.
type getLocation struct{}

func NewGetLocation() *getLocation { return &getLocation{} }

func (g *getLocation) Name() string { return "get_location" }

func (g *getLocation) Description() string {
	return "Returns the system's current location, if available"
}

func (g *getLocation) Parameters() domain.Definition { return domain.Definition{} }

func (g *getLocation) Execute(context.Context, map[string]any) (string, error) {
	zone, _ := time.Now().Zone()
	return fmt.Sprintf("Somewhere over the rainbow (timezone %s)", zone), nil
}
