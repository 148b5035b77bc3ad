package workers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type scriptedListener struct{ lines []string }

func (s *scriptedListener) Listen(context.Context) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type echoProcessor struct{}

func (echoProcessor) Process(_ context.Context, text string) string {
	if text == "bye" {
		return "Goodbye! Have a great day."
	}
	return "echo: " + text
}

func TestAssistantLoopStopsOnExitPhrase(t *testing.T) {
	var out bytes.Buffer
	shutdownCalled := false

	loop, err := NewAssistantLoop(
		&scriptedListener{lines: []string{"hello there", "", "bye", "never reached"}},
		echoProcessor{},
		nil,
		&out,
		func() { shutdownCalled = true },
	)
	if err != nil {
		t.Fatalf("creating loop: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- loop.Start(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on exit phrase")
	}

	if !shutdownCalled {
		t.Error("expected shutdown callback")
	}

	transcript := out.String()
	if !strings.Contains(transcript, "User: hello there") ||
		!strings.Contains(transcript, "JARVIS: echo: hello there") {
		t.Errorf("expected transcript of the first exchange, got %q", transcript)
	}
	if strings.Contains(transcript, "never reached") {
		t.Errorf("loop kept going past the exit phrase: %q", transcript)
	}
}

func TestAssistantLoopStopsOnEOF(t *testing.T) {
	loop, err := NewAssistantLoop(&scriptedListener{}, echoProcessor{}, nil, &bytes.Buffer{}, func() {})
	if err != nil {
		t.Fatalf("creating loop: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- loop.Start(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on EOF")
	}
}

type blockingListener struct{}

func (blockingListener) Listen(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestAssistantLoopStopsOnContextCancel(t *testing.T) {
	loop, err := NewAssistantLoop(blockingListener{}, echoProcessor{}, nil, &bytes.Buffer{}, func() {})
	if err != nil {
		t.Fatalf("creating loop: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Start(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("loop returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after context cancellation")
	}
}

type failingListener struct{ failures int }

func (f *failingListener) Listen(context.Context) (string, error) {
	if f.failures > 0 {
		f.failures--
		return "", errors.New("audio device busy")
	}
	return "", io.EOF
}

func TestAssistantLoopBacksOffAfterListenErrors(t *testing.T) {
	loop, err := NewAssistantLoop(&failingListener{failures: 2}, echoProcessor{}, nil, &bytes.Buffer{}, func() {})
	if err != nil {
		t.Fatalf("creating loop: %v", err)
	}

	start := time.Now()
	if err := loop.Start(context.Background()); err != nil {
		t.Fatalf("loop returned error: %v", err)
	}

	if elapsed := time.Since(start); elapsed < 2*listenRetryDelay {
		t.Errorf("expected a delay after each listen failure, loop finished in %v", elapsed)
	}
}

func TestAssistantLoopRequiresListener(t *testing.T) {
	if _, err := NewAssistantLoop(nil, echoProcessor{}, nil, &bytes.Buffer{}, func() {}); err == nil {
		t.Fatal("expected error for nil listener")
	}
}
