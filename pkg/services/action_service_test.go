package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type echoAction struct {
	name   string
	params domain.Definition
}

func (e *echoAction) Name() string                  { return e.name }
func (e *echoAction) Description() string           { return "echoes its parameters" }
func (e *echoAction) Parameters() domain.Definition { return e.params }

func (e *echoAction) Execute(_ context.Context, params map[string]any) (string, error) {
	return fmt.Sprintf("%v", params), nil
}

func TestActionServiceDispatch(t *testing.T) {
	svc, err := NewActionService([]Action{
		&echoAction{name: "get_time", params: domain.Definition{
			Properties: map[string]domain.Property{
				"timezone": {Type: domain.String},
			},
			Required: []string{"timezone"},
		}},
	})
	if err != nil {
		t.Fatalf("creating service: %v", err)
	}

	tests := []struct {
		name    string
		req     domain.ActionRequest
		wantErr bool
	}{
		{"known action", domain.ActionRequest{Action: "get_time", Parameters: map[string]any{"timezone": "Asia/Tokyo"}}, false},
		{"unknown action", domain.ActionRequest{Action: "launch_missiles"}, true},
		{"missing required param", domain.ActionRequest{Action: "get_time", Parameters: map[string]any{}}, true},
		{"wrong param type", domain.ActionRequest{Action: "get_time", Parameters: map[string]any{"timezone": 42.0}}, true},
	}

	for _, test := range tests {
		_, err := svc.Execute(context.Background(), test.req)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: got err=%v, wantErr=%v", test.name, err, test.wantErr)
		}
	}
}

func TestActionServiceRejectsDuplicates(t *testing.T) {
	_, err := NewActionService([]Action{
		&echoAction{name: "get_time"},
		&echoAction{name: "get_time"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate action names")
	}
}

func TestIsValidTypeIntegers(t *testing.T) {
	if !isValidType(5.0, domain.Integer) {
		t.Error("expected whole float64 to satisfy integer parameters")
	}
	if isValidType(5.5, domain.Integer) {
		t.Error("expected fractional float64 to fail integer parameters")
	}
}
