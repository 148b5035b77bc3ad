package services

import "regexp"

// The model sometimes wraps JSON action requests in markdown code fences.
var jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// ExtractJSON returns the JSON object embedded in a fenced code block, or the
// input unchanged when no fence is present.
func ExtractJSON(response string) string {
	if match := jsonFencePattern.FindStringSubmatch(response); match != nil {
		return match[1]
	}
	return response
}
