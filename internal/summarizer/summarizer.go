package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/note"
)

// MinTextLength is the shortest trimmed input worth sending to a model.
const MinTextLength = 3

var ErrTextTooShort = errors.New("text too short")

// Summarize runs the fallback list, normalizes the answer and sanitizes it.
// The only errors are ErrTextTooShort and *llm.AllModelsFailedError.
func (s *implSummarizer) Summarize(ctx context.Context, req Request) (note.Result, error) {
	text := strings.TrimSpace(req.Text)
	if len(text) < MinTextLength {
		return note.Result{}, ErrTextTooShort
	}

	startTime := time.Now()
	messages := s.buildMessages(req.Kind, strings.TrimSpace(req.Title), text)

	produced, err := s.runner.Run(ctx, s.models, messages, s.genOpts)
	if err != nil {
		return note.Result{}, fmt.Errorf("summarize: %w", err)
	}

	candidate, stage := s.normalize(ctx, produced, text)
	result := note.Sanitize(candidate, text)
	result.ModelUsed = produced.Model

	s.logger.Info(ctx, "Note ready: model=%s stage=%s bullets=%d actions=%d in %s",
		produced.Model, stage, len(result.Bullets), len(result.Actions), time.Since(startTime).Round(time.Millisecond))
	return result, nil
}

func (s *implSummarizer) buildMessages(kind Kind, title, text string) []llm.Message {
	system := s.prompts.TextSystem
	var user string

	switch kind {
	case KindTranscript:
		system = s.prompts.TranscriptSystem
		user = text
		if title != "" {
			user = "Title: " + title + "\nTranscript:\n" + text
		}
	default:
		if title == "" {
			title = "Untitled"
		}
		user = "Title: " + title + "\nText:\n" + text
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}
