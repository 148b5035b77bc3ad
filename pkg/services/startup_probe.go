package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/sashabaranov/go-openai"
)

const (
	probeSystemPrompt = "You are a helpful assistant."
	probeUserPrompt   = "Write a haiku about recursion in programming."
)

type CompletionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// startupProbe performs a single fixed completion exchange at startup and
// reports the outcome on the console. A failed probe is logged and swallowed;
// it never stops the process.
type startupProbe struct {
	api    CompletionAPI
	model  string
	out    io.Writer
	errOut io.Writer
}

func NewStartupProbe(api CompletionAPI, model string, out, errOut io.Writer) *startupProbe {
	return &startupProbe{
		api:    api,
		model:  model,
		out:    out,
		errOut: errOut,
	}
}

func (p *startupProbe) Name() string { return "completion_probe" }

func (p *startupProbe) Start(ctx context.Context) error {
	slog.Info("Starting service", "name", p.Name())
	defer slog.Info("Service stopped", "name", p.Name())

	p.Run(ctx)
	return nil
}

func (p *startupProbe) Run(ctx context.Context) {
	resp, err := p.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: probeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: probeUserPrompt},
		},
	})
	if err != nil {
		fmt.Fprintf(p.errOut, "Error: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(p.errOut, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(p.out, string(data))

	if len(resp.Choices) > 0 {
		fmt.Fprintln(p.out, resp.Choices[0].Message.Content)
	}
}
