package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	valid := `{"summary":"s","bullets":[],"actions":[],"note":"n"}`

	tests := []struct {
		name   string
		raw    string
		parsed bool
	}{
		{"valid object", valid, true},
		{"surrounding whitespace", "\n  " + valid + "\n", true},
		{"json fence", "```json\n" + valid + "\n```", true},
		{"bare fence", "```\n" + valid + "\n```", true},
		{"wrong field types still structural", `{"summary":1,"bullets":"x","actions":null,"note":false}`, true},
		{"missing note", `{"summary":"s","bullets":[],"actions":[]}`, false},
		{"array", `[1,2,3]`, false},
		{"null", `null`, false},
		{"prose", "Here is your note: summary...", false},
		{"truncated json", `{"summary":"s","bullets":[`, false},
		{"empty", "", false},
		{"prose around json", "Sure!\n" + valid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Parse(tt.raw)
			switch o := out.(type) {
			case Parsed:
				assert.True(t, tt.parsed, "unexpected Parsed: %v", o.Fields)
			case Unparsable:
				assert.False(t, tt.parsed, "unexpected Unparsable")
				assert.Equal(t, tt.raw, o.Raw)
			default:
				t.Fatalf("unexpected outcome %T", out)
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	c := Synthesize("Buy milk. Call mom. Finish report.")

	assert.Equal(t, "Buy milk.", c["summary"])
	assert.Equal(t, []any{"Buy milk.", "Call mom.", "Finish report."}, c["bullets"])
	assert.Equal(t, []any{map[string]any{"task": FallbackTask, "due": nil}}, c["actions"])
	for _, key := range []string{"summary", "bullets", "actions", "note"} {
		assert.Contains(t, c, key)
	}
}

func TestSynthesizeLimits(t *testing.T) {
	long := "This first sentence keeps going and going well past any reasonable summary length because nobody stopped to think about where it should end at all. Two. Three. Four. Five. Six. Seven."

	c := Synthesize(long)

	assert.LessOrEqual(t, len([]rune(c["summary"].(string))), 140)
	assert.Len(t, c["bullets"], 5)
}
