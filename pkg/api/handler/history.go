package handler

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/russross/blackfriday"
	"github.com/samber/lo"

	"github.com/dskvich/jarvis-assistant/pkg/api/response"
	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

const defaultHistoryLimit = 20

type HistoryProvider interface {
	Recent(ctx context.Context, limit int) ([]domain.Interaction, error)
	Search(ctx context.Context, text string, limit int) ([]domain.Interaction, error)
}

type history struct {
	provider HistoryProvider
	writer   response.JSONResponseWriter
}

func NewHistory(provider HistoryProvider) *history {
	return &history{provider: provider}
}

// ServeHTTP returns recent interactions as JSON, optionally filtered by a
// search query.
func (h *history) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	var (
		interactions []domain.Interaction
		err          error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		interactions, err = h.provider.Search(r.Context(), q, limit)
	} else {
		interactions, err = h.provider.Recent(r.Context(), limit)
	}
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writer.WriteSuccessResponse(w, map[string]any{
		"interactions": interactions,
	})
}

var transcriptTemplate = template.Must(template.New("transcript").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>JARVIS transcript</title></head>
<body>
<h1>Conversation transcript</h1>
{{range .}}
<div class="interaction">
<p><b>{{.CreatedAt}}</b></p>
<p>User: {{.UserMessage}}</p>
<div>JARVIS: {{.AssistantResponse}}</div>
</div>
<hr>
{{end}}
</body>
</html>`))

type transcriptEntry struct {
	CreatedAt         string
	UserMessage       string
	AssistantResponse template.HTML
}

// Transcript renders recent interactions as an HTML page, with assistant
// markdown converted to HTML.
func (h *history) Transcript(w http.ResponseWriter, r *http.Request) {
	interactions, err := h.provider.Recent(r.Context(), defaultHistoryLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := lo.Map(interactions, func(in domain.Interaction, _ int) transcriptEntry {
		return transcriptEntry{
			CreatedAt:         in.CreatedAt.Format("2006-01-02 15:04:05"),
			UserMessage:       in.UserMessage,
			AssistantResponse: template.HTML(blackfriday.MarkdownCommon([]byte(in.AssistantResponse))),
		}
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := transcriptTemplate.Execute(w, entries); err != nil {
		fmt.Fprintf(w, "rendering transcript: %v", err)
	}
}
