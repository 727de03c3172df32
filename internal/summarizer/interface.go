package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/swift-scribe/internal/note"
)

// Summarizer turns source text into a sanitized note using hosted models.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (note.Result, error)
}

// Kind selects the system prompt used for the source text.
type Kind string

const (
	KindText       Kind = "text"
	KindTranscript Kind = "transcript"
)

type Request struct {
	Text  string
	Title string
	Kind  Kind
}
