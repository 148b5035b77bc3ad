package actions

import (
	"context"
	"strings"
	"testing"
)

func TestGetTime(t *testing.T) {
	action := NewGetTime()

	tests := []struct {
		name    string
		params  map[string]any
		wantErr bool
	}{
		{"system timezone", map[string]any{}, false},
		{"valid timezone", map[string]any{"timezone": "Asia/Tokyo"}, false},
		{"utc", map[string]any{"timezone": "UTC"}, false},
		{"invalid timezone", map[string]any{"timezone": "Mars/Olympus_Mons"}, true},
	}

	for _, test := range tests {
		got, err := action.Execute(context.Background(), test.params)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: got err=%v, wantErr=%v", test.name, err, test.wantErr)
			continue
		}
		if err == nil && !strings.Contains(got, "M") {
			t.Errorf("%s: expected AM/PM formatted time, got %q", test.name, got)
		}
	}
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		expected int
	}{
		{"present", map[string]any{"limit": 3.0}, 3},
		{"missing", map[string]any{}, 5},
		{"zero falls back", map[string]any{"limit": 0.0}, 5},
		{"negative falls back", map[string]any{"limit": -2.0}, 5},
		{"wrong type falls back", map[string]any{"limit": "ten"}, 5},
	}

	for _, test := range tests {
		if got := intParam(test.params, "limit", 5); got != test.expected {
			t.Errorf("%s: got %d, want %d", test.name, got, test.expected)
		}
	}
}
