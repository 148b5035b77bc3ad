package openai

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

const (
	maxResponseTokens = 150
	temperature       = 0.7
)

type client struct {
	api       *openai.Client
	chatModel string
}

func NewClient(token, chatModel string) (*client, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}
	if chatModel == "" {
		chatModel = domain.DefaultChatModel
	}
	return &client{
		api:       openai.NewClient(token),
		chatModel: chatModel,
	}, nil
}

// GenerateResponse sends the conversation and returns the first choice's
// message content.
func (c *client) GenerateResponse(ctx context.Context, messages []domain.Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    toAPIMessages(messages),
		MaxTokens:   maxResponseTokens,
		Temperature: temperature,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("sending chat completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// CreateChatCompletion exposes the full API response shape for callers that
// need more than the first choice's text.
func (c *client) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return c.api.CreateChatCompletion(ctx, req)
}

// Transcribe converts a recorded audio file to text using Whisper.
func (c *client) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		return "", fmt.Errorf("sending transcription request: %w", err)
	}

	return resp.Text, nil
}

// Synthesize converts text to spoken audio (mp3 bytes).
func (c *client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.SpeechVoice(voice),
	})
	if err != nil {
		return nil, fmt.Errorf("sending speech request: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading speech response: %w", err)
	}

	return data, nil
}

// Embed returns the semantic embedding vector for the text.
func (c *client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return nil, fmt.Errorf("sending embeddings request: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embeddings in response")
	}

	return resp.Data[0].Embedding, nil
}

func toAPIMessages(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
