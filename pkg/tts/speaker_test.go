package tts

import (
	"context"
	"testing"
	"time"

	"github.com/dskvich/jarvis-assistant/pkg/domain"
)

type fakeSynth struct {
	data   []byte
	voices []string
}

func (f *fakeSynth) Synthesize(_ context.Context, _, voice string) ([]byte, error) {
	f.voices = append(f.voices, voice)
	return f.data, nil
}

func TestSpeakerDefaultsVoice(t *testing.T) {
	synth := &fakeSynth{data: []byte("mp3")}
	s := newSpeaker(synth, "", "true")

	if err := s.Speak(context.Background(), "hello"); err != nil {
		t.Fatalf("speaking: %v", err)
	}

	if len(synth.voices) != 1 || synth.voices[0] != domain.DefaultVoice {
		t.Errorf("expected default voice %q, got %v", domain.DefaultVoice, synth.voices)
	}
}

func TestSpeakerWaitReturnsAfterStop(t *testing.T) {
	s := newSpeaker(&fakeSynth{data: []byte("mp3")}, "onyx", "true")

	for i := 0; i < 3; i++ {
		if err := s.Speak(context.Background(), "hello"); err != nil {
			t.Fatalf("speaking: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after the speaker stopped with queued utterances")
	}
}
