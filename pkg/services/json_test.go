package services

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"```json\n{\"action\": \"get_time\"}\n```", `{"action": "get_time"}`},
		{"```json {\"action\": \"get_time\", \"parameters\": {}} ```", `{"action": "get_time", "parameters": {}}`},
		{`{"action": "get_time"}`, `{"action": "get_time"}`},
		{"It's 8 PM.", "It's 8 PM."},
		{"```json\nnot json\n```", "```json\nnot json\n```"},
		{"", ""},
	}

	for _, test := range tests {
		if got := ExtractJSON(test.input); got != test.expected {
			t.Errorf("ExtractJSON(%q) = %q, want %q", test.input, got, test.expected)
		}
	}
}
