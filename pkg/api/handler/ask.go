package handler

import (
	"context"
	"net/http"

	"github.com/dskvich/jarvis-assistant/pkg/api/response"
)

type CommandProcessor interface {
	Process(ctx context.Context, text string) string
}

// ask answers a one-shot prompt through the same command processor the
// assistant loop uses.
type ask struct {
	processor CommandProcessor
	writer    response.JSONResponseWriter
}

func NewAsk(processor CommandProcessor) *ask {
	return &ask{processor: processor}
}

func (a *ask) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		a.writer.WriteErrorResponse(w, http.StatusBadRequest, "Prompt parameter is missing or empty.")
		return
	}

	a.writer.WriteSuccessResponse(w, map[string]string{
		"response": a.processor.Process(r.Context(), prompt),
	})
}
