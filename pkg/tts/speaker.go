package tts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
	"github.com/dskvich/jarvis-assistant/pkg/logger"
)

var players = []string{"mpg123", "afplay", "ffplay"}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// speaker synthesizes speech and plays it through an external player, one
// utterance at a time.
type speaker struct {
	synth  Synthesizer
	voice  string
	player string

	queue   chan []byte
	pending sync.WaitGroup
}

func NewSpeaker(synth Synthesizer, voice string) (*speaker, error) {
	player, err := findPlayer()
	if err != nil {
		return nil, err
	}
	return newSpeaker(synth, voice, player), nil
}

func newSpeaker(synth Synthesizer, voice, player string) *speaker {
	if voice == "" {
		voice = domain.DefaultVoice
	}
	return &speaker{
		synth:  synth,
		voice:  voice,
		player: player,
		queue:  make(chan []byte, 8),
	}
}

func findPlayer() (string, error) {
	for _, p := range players {
		if _, err := exec.LookPath(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no audio player found, tried %v", players)
}

func (s *speaker) Name() string { return "speaker" }

// Start drains the playback queue until the context is canceled.
func (s *speaker) Start(ctx context.Context) error {
	slog.Info("Starting service", "name", s.Name())
	defer slog.Info("Service stopped", "name", s.Name())

	for {
		select {
		case <-ctx.Done():
			s.drain()
			return nil
		case data := <-s.queue:
			if err := s.play(ctx, data); err != nil {
				slog.ErrorContext(ctx, "playing audio", logger.Err(err))
			}
			s.pending.Done()
		}
	}
}

// drain releases queued utterances that will never be played so that Wait
// cannot block after the speaker has stopped.
func (s *speaker) drain() {
	for {
		select {
		case <-s.queue:
			s.pending.Done()
		default:
			return
		}
	}
}

// Speak synthesizes the text and enqueues it for playback.
func (s *speaker) Speak(ctx context.Context, text string) error {
	data, err := s.synth.Synthesize(ctx, text, s.voice)
	if err != nil {
		return fmt.Errorf("synthesizing speech: %w", err)
	}

	s.pending.Add(1)
	select {
	case s.queue <- data:
		return nil
	case <-ctx.Done():
		s.pending.Done()
		return ctx.Err()
	}
}

// Wait blocks until every queued utterance has been played.
func (s *speaker) Wait() {
	s.pending.Wait()
}

func (s *speaker) play(ctx context.Context, data []byte) error {
	filePath := filepath.Join(os.TempDir(), fmt.Sprintf("jarvis-tts-%d.mp3", time.Now().UnixNano()))
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("writing audio file: %w", err)
	}
	defer os.Remove(filePath)

	args := []string{filePath}
	if s.player == "ffplay" {
		args = []string{"-nodisp", "-autoexit", filePath}
	}

	cmd := exec.CommandContext(ctx, s.player, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running `%s`: %w: %s", s.player, err, out)
	}
	return nil
}
