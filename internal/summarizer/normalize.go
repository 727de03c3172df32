package summarizer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/note"
)

// FallbackTask is the single action attached to a note synthesized from source text.
const FallbackTask = "review and extract key takeaways"

// Outcome is the result of Parse: either Parsed or Unparsable.
type Outcome interface {
	outcome()
}

// Parsed carries the decoded fields of a structurally valid answer.
type Parsed struct {
	Fields note.Candidate
}

// Unparsable carries model text that is not a note object.
type Unparsable struct {
	Raw string
}

func (Parsed) outcome()     {}
func (Unparsable) outcome() {}

// Stage records which step of normalization produced the candidate.
type Stage string

const (
	StageModel    Stage = "model"
	StageRepair   Stage = "repair"
	StageFallback Stage = "fallback"
)

// Parse decodes raw as a JSON object holding every key in note.RequiredKeys.
// Only structure is checked; field types are left to note.Sanitize.
func Parse(raw string) Outcome {
	text := stripFence(strings.TrimSpace(raw))

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil || fields == nil {
		return Unparsable{Raw: raw}
	}
	for _, key := range note.RequiredKeys {
		if _, ok := fields[key]; !ok {
			return Unparsable{Raw: raw}
		}
	}
	return Parsed{Fields: note.Candidate(fields)}
}

// stripFence unwraps a single ```-fenced block.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	body := strings.TrimSuffix(s, "```")
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return s
	}
	return strings.TrimSpace(body[nl+1:])
}

// Synthesize builds a candidate straight from source text: the first sentence
// as summary, the first five sentences as bullets and one generic action.
func Synthesize(source string) note.Candidate {
	sentences := note.Sentences(source)

	summary := ""
	if len(sentences) > 0 {
		summary = note.Truncate(sentences[0], note.SummaryMaxRunes)
	}

	bullets := make([]any, 0, note.MaxBullets)
	for i, s := range sentences {
		if i == note.MaxBullets {
			break
		}
		bullets = append(bullets, s)
	}

	return note.Candidate{
		"summary": summary,
		"bullets": bullets,
		"actions": []any{map[string]any{"task": FallbackTask, "due": nil}},
		"note":    "",
	}
}

// normalize never fails. A malformed answer gets one repair call to the model
// that produced it; if that also fails the candidate is synthesized from source.
func (s *implSummarizer) normalize(ctx context.Context, produced llm.Result, source string) (note.Candidate, Stage) {
	if p, ok := Parse(produced.Text).(Parsed); ok {
		return p.Fields, StageModel
	}

	s.logger.Warn(ctx, "Model %s returned malformed output (%d bytes), requesting repair", produced.Model, len(produced.Text))

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: s.prompts.RepairSystem},
		{Role: llm.RoleUser, Content: produced.Text},
	}
	repaired, err := s.invoker.Invoke(ctx, produced.Model, messages, s.repairOpts)
	if err != nil {
		s.logger.Warn(ctx, "Repair call failed: %v", err)
	} else if p, ok := Parse(repaired).(Parsed); ok {
		return p.Fields, StageRepair
	}

	s.logger.Warn(ctx, "Repair did not yield a note, synthesizing from source text")
	return Synthesize(source), StageFallback
}
