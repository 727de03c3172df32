package transcriber

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Transcribe returns the trimmed transcript, or ErrEmptyTranscript when the
// backend answered with nothing.
func (t *implTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	startTime := time.Now()
	t.logger.Info(ctx, "Transcribing %s (%d bytes) with %s", filename, len(audio), t.id)

	text, err := t.provider.Transcribe(ctx, t.model, audio, filename)
	if err != nil {
		return "", fmt.Errorf("transcribe with %s: %w", t.id, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTranscript
	}

	t.logger.Info(ctx, "Transcription completed: %d chars in %s", len(text), time.Since(startTime).Round(time.Millisecond))
	return text, nil
}
