package converter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const phraseTimeLimit = 5 * time.Second

// MicRecorder captures a single phrase from the default microphone into a
// temporary wav file.
type MicRecorder struct{}

func (m *MicRecorder) Record(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("arecord"); err != nil {
		return "", fmt.Errorf("looking for `arecord`: %w", err)
	}

	outputPath := filepath.Join(os.TempDir(), fmt.Sprintf("jarvis-%d.wav", time.Now().UnixNano()))

	cmd := exec.CommandContext(ctx, "arecord",
		"-f", "cd",
		"-d", fmt.Sprintf("%d", int(phraseTimeLimit.Seconds())),
		outputPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("running `arecord`: %w: %s", err, out)
	}

	return outputPath, nil
}
