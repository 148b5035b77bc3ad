package keyword

import (
	"strings"

	"github.com/samber/lo"
)

var exitPhrases = []string{"goodbye", "exit", "quit", "peace!", "shutting down", "shutting it down"}

// IsExit reports whether an assistant response signals the end of the session.
func IsExit(response string) bool {
	lower := strings.ToLower(response)
	return lo.SomeBy(exitPhrases, func(phrase string) bool {
		return strings.Contains(lower, phrase)
	})
}
