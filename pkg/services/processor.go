package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
	"github.com/dskvich/jarvis-assistant/pkg/logger"
)

type ChatClient interface {
	GenerateResponse(ctx context.Context, messages []domain.Message) (string, error)
}

type ActionExecutor interface {
	Execute(ctx context.Context, req domain.ActionRequest) (string, error)
}

type HistoryRepository interface {
	Save(ctx context.Context, userMessage, assistantResponse string) error
	Recent(ctx context.Context, limit int) ([]domain.Interaction, error)
}

type Memorizer interface {
	Remember(ctx context.Context, userMessage, assistantResponse string)
	Recall(ctx context.Context, query string) ([]domain.Memory, error)
}

const historyContextSize = 5

// processor turns a spoken or typed command into a response, asking the model
// for a JSON action request first when system information is needed.
type processor struct {
	chat    ChatClient
	actions ActionExecutor
	history HistoryRepository
	memory  Memorizer

	basicCommands map[string]func() string
}

func NewProcessor(
	chat ChatClient,
	actions ActionExecutor,
	history HistoryRepository,
	memory Memorizer,
) *processor {
	return &processor{
		chat:    chat,
		actions: actions,
		history: history,
		memory:  memory,
		basicCommands: map[string]func() string{
			"time":    func() string { return time.Now().Format("03:04 PM MST") },
			"date":    func() string { return time.Now().Format("2006-01-02") },
			"hello":   func() string { return "At your service, wadup!" },
			"goodbye": func() string { return "Alright, peace!" },
			"exit":    func() string { return "Shutting down." },
			"quit":    func() string { return "Shutting it down." },
		},
	}
}

// Process handles a single user command. It never returns an error: failures
// collapse into a fixed apology so the assistant loop keeps running.
func (p *processor) Process(ctx context.Context, text string) string {
	if fn, ok := p.basicCommands[strings.ToLower(strings.TrimSpace(text))]; ok {
		return fn()
	}

	messages := p.buildMessages(ctx, text)

	response, err := p.chat.GenerateResponse(ctx, messages)
	if err != nil {
		slog.ErrorContext(ctx, "processing command", logger.Err(err))
		return domain.ApologyResponse
	}

	var req domain.ActionRequest
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &req); err == nil && req.Action != "" {
		response = p.completeWithAction(ctx, messages, response, req)
	}

	p.remember(ctx, text, response)
	return response
}

func (p *processor) buildMessages(ctx context.Context, text string) []domain.Message {
	messages := []domain.Message{{Role: domain.MessageRoleSystem, Content: domain.SystemPrompt}}

	if p.memory != nil {
		if memories, err := p.memory.Recall(ctx, text); err != nil {
			slog.WarnContext(ctx, "recalling memories", logger.Err(err))
		} else if len(memories) > 0 {
			var sb strings.Builder
			sb.WriteString("Relevant memories from previous conversations:")
			for _, m := range memories {
				sb.WriteString("\n- " + m.Content)
			}
			messages = append(messages, domain.Message{Role: domain.MessageRoleSystem, Content: sb.String()})
		}
	}

	if p.history != nil {
		interactions, err := p.history.Recent(ctx, historyContextSize)
		if err != nil {
			slog.WarnContext(ctx, "fetching recent interactions", logger.Err(err))
		}
		for _, in := range interactions {
			messages = append(messages,
				domain.Message{Role: domain.MessageRoleUser, Content: in.UserMessage},
				domain.Message{Role: domain.MessageRoleAssistant, Content: in.AssistantResponse},
			)
		}
	}

	return append(messages, domain.Message{Role: domain.MessageRoleUser, Content: text})
}

// completeWithAction executes the requested system action and asks the model
// to phrase the result as a natural response.
func (p *processor) completeWithAction(ctx context.Context, messages []domain.Message, rawResponse string, req domain.ActionRequest) string {
	result, err := p.actions.Execute(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "executing system action", "action", req.Action, logger.Err(err))
		result = fmt.Sprintf("action %q failed: %v", req.Action, err)
	}

	messages = append(messages,
		domain.Message{Role: domain.MessageRoleAssistant, Content: rawResponse},
		domain.Message{
			Role:    domain.MessageRoleSystem,
			Content: fmt.Sprintf("System action result: %s. Please provide a natural response using this information.", result),
		},
	)

	response, err := p.chat.GenerateResponse(ctx, messages)
	if err != nil {
		slog.ErrorContext(ctx, "formatting action result", "action", req.Action, logger.Err(err))
		return domain.ApologyResponse
	}
	return response
}

func (p *processor) remember(ctx context.Context, userMessage, response string) {
	if p.history != nil {
		if err := p.history.Save(ctx, userMessage, response); err != nil {
			slog.WarnContext(ctx, "saving interaction", logger.Err(err))
		}
	}
	if p.memory != nil {
		p.memory.Remember(ctx, userMessage, response)
	}
}
