package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

type Recorder interface {
	Record(ctx context.Context) (string, error)
}

type SpeechTranscriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// VoiceToText records one phrase and returns its transcription.
type VoiceToText struct {
	recorder    Recorder
	transcriber SpeechTranscriber
}

func NewVoiceToText(recorder Recorder, transcriber SpeechTranscriber) *VoiceToText {
	return &VoiceToText{
		recorder:    recorder,
		transcriber: transcriber,
	}
}

func (v *VoiceToText) Listen(ctx context.Context) (string, error) {
	filePath, err := v.recorder.Record(ctx)
	if err != nil {
		return "", fmt.Errorf("recording phrase: %w", err)
	}
	defer os.Remove(filePath)

	slog.DebugContext(ctx, "Recognizing...", "filePath", filePath)

	text, err := v.transcriber.Transcribe(ctx, filePath)
	if err != nil {
		return "", fmt.Errorf("transcribing audio file: %w", err)
	}

	return text, nil
}
