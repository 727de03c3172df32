// Package note holds the structured note returned to callers and the pure
// functions that turn a loosely typed model candidate into one.
package note

const (
	MaxBullets = 5
	MaxActions = 4

	BulletMarker = "• "
)

// Action is a follow-up task. Due is nil unless the source grounds a date.
type Action struct {
	Task string  `json:"task"`
	Due  *string `json:"due"`
}

// Result is the canonical note. Markdown is always rendered from Summary,
// Bullets and Actions.
type Result struct {
	Summary   string   `json:"summary"`
	Bullets   []string `json:"bullets"`
	Actions   []Action `json:"actions"`
	Markdown  string   `json:"note"`
	ModelUsed string   `json:"model_used"`
}

// Candidate is a structurally valid but untyped note: the decoded JSON fields
// of a model answer, or a synthesized stand-in.
type Candidate map[string]any

// Keys every candidate must carry.
var RequiredKeys = []string{"summary", "bullets", "actions", "note"}
