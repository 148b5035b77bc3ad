package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type Action interface {
	Name() string
	Description() string
	Parameters() domain.Definition
	Execute(ctx context.Context, params map[string]any) (string, error)
}

type actionService struct {
	actions map[string]Action
}

func NewActionService(actions []Action) (*actionService, error) {
	m := make(map[string]Action, len(actions))
	for _, a := range actions {
		if a.Name() == "" {
			return nil, errors.New("action name cannot be empty")
		}
		if _, ok := m[a.Name()]; ok {
			return nil, fmt.Errorf("duplicate action %q", a.Name())
		}
		m[a.Name()] = a
	}
	return &actionService{actions: m}, nil
}

// Execute dispatches an action request coming from the model, validating the
// declared parameters before the call.
func (s *actionService) Execute(ctx context.Context, req domain.ActionRequest) (string, error) {
	slog.DebugContext(ctx, "Executing action", "name", req.Action, "params", req.Parameters)

	action, ok := s.actions[req.Action]
	if !ok {
		return "", fmt.Errorf("action not found: %q", req.Action)
	}

	if err := validateArguments(action.Parameters(), req.Parameters); err != nil {
		return "", fmt.Errorf("invalid arguments for action %q: %w", req.Action, err)
	}

	result, err := action.Execute(ctx, req.Parameters)

	slog.DebugContext(ctx, "Action executed", "name", req.Action, "result", result, "err", err)
	return result, err
}

func validateArguments(schema domain.Definition, args map[string]any) error {
	for _, name := range schema.Required {
		value, ok := args[name]
		if !ok {
			return fmt.Errorf("missing required parameter %q", name)
		}

		if !isValidType(value, schema.Properties[name].Type) {
			return fmt.Errorf("parameter %q has invalid type: expected %q, got %T", name, schema.Properties[name].Type, value)
		}
	}
	return nil
}

func isValidType(value any, expectedType domain.DataType) bool {
	switch expectedType {
	case domain.String:
		_, ok := value.(string)
		return ok
	case domain.Number:
		_, ok := value.(float64)
		return ok
	case domain.Integer:
		// JSON numbers decode as float64.
		f, ok := value.(float64)
		return ok && f == math.Trunc(f)
	case domain.Boolean:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
