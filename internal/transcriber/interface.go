package transcriber

import (
	"context"
	"errors"
)

// ErrEmptyTranscript is returned when a backend produced no text.
var ErrEmptyTranscript = errors.New("transcription failed or returned empty text")

// Provider transcribes audio with a named model.
type Provider interface {
	Transcribe(ctx context.Context, model string, audio []byte, filename string) (string, error)
}

// Transcriber transcribes audio with a model fixed at construction.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}
