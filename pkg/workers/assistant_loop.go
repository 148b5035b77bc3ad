package workers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/keyword"
	"github.com/dskvich/jarvis-assistant/pkg/logger"
)

// echoDelay keeps the microphone from picking up the tail of our own speech.
const echoDelay = time.Second

// listenRetryDelay throttles retries after a listening failure so a broken
// microphone does not spin the loop at full speed.
const listenRetryDelay = time.Second

const greeting = "Hello, I'm Jarvis. How can I help you?"

type Listener interface {
	Listen(ctx context.Context) (string, error)
}

type Processor interface {
	Process(ctx context.Context, text string) string
}

type Speaker interface {
	Speak(ctx context.Context, text string) error
	Wait()
}

// assistantLoop drives the listen -> process -> respond cycle until the
// response contains an exit phrase or the context is canceled.
type assistantLoop struct {
	listener   Listener
	processor  Processor
	speaker    Speaker // nil in text-only mode
	out        io.Writer
	shutdownFn func()

	requestID int64
}

func NewAssistantLoop(
	listener Listener,
	processor Processor,
	speaker Speaker,
	out io.Writer,
	shutdownFn func(),
) (*assistantLoop, error) {
	if listener == nil {
		return nil, errors.New("listener is required")
	}
	return &assistantLoop{
		listener:   listener,
		processor:  processor,
		speaker:    speaker,
		out:        out,
		shutdownFn: shutdownFn,
	}, nil
}

func (a *assistantLoop) Name() string { return "assistant_loop" }

func (a *assistantLoop) Start(ctx context.Context) error {
	slog.Info("Starting service", "name", a.Name())
	defer slog.Info("Service stopped", "name", a.Name())

	fmt.Fprintf(a.out, "JARVIS: %s\n", greeting)
	a.respond(ctx, greeting)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		text, err := a.listener.Listen(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				a.shutdownFn()
				return nil
			}
			slog.ErrorContext(ctx, "listening for command", logger.Err(err))
			select {
			case <-ctx.Done():
			case <-time.After(listenRetryDelay):
			}
			continue
		}
		if text == "" {
			continue
		}

		a.requestID++
		reqCtx := logger.ContextWithRequestID(ctx, a.requestID)

		response := a.processor.Process(reqCtx, text)

		fmt.Fprintf(a.out, "User: %s\n", text)
		fmt.Fprintf(a.out, "JARVIS: %s\n", response)
		a.respond(reqCtx, response)

		if keyword.IsExit(response) {
			a.shutdownFn()
			return nil
		}
	}
}

func (a *assistantLoop) respond(ctx context.Context, text string) {
	if a.speaker == nil {
		return
	}
	if err := a.speaker.Speak(ctx, text); err != nil {
		slog.ErrorContext(ctx, "speaking response", logger.Err(err))
		return
	}
	a.speaker.Wait()
	time.Sleep(echoDelay)
}
