package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestSanitizeClampsBullets(t *testing.T) {
	c := Candidate{
		"summary": "  Weekly   sync ",
		"bullets": []any{"• one", "- two", "* three", "four", 5.0, "", "five", "six"},
	}

	r := Sanitize(c, "weekly sync notes")

	assert.Equal(t, "Weekly sync", r.Summary)
	assert.Equal(t, []string{"• one", "• two", "• three", "• four", "• five"}, r.Bullets)
}

func TestSanitizeKeepsEmphasis(t *testing.T) {
	r := Sanitize(Candidate{"bullets": []any{"**Budget** approved"}}, "budget")
	assert.Equal(t, []string{"• **Budget** approved"}, r.Bullets)
}

func TestSanitizeCoercesMistypedFields(t *testing.T) {
	c := Candidate{
		"summary": 42.0,
		"bullets": "not a list",
		"actions": map[string]any{"task": "not a list"},
		"note":    nil,
	}

	r := Sanitize(c, "Buy milk. Call mom.")

	assert.Equal(t, "Buy milk.", r.Summary)
	assert.Empty(t, r.Bullets)
	assert.Empty(t, r.Actions)
	assert.NotNil(t, r.Bullets)
	assert.NotNil(t, r.Actions)
}

func TestSanitizeActions(t *testing.T) {
	actions := []any{
		map[string]any{"task": "  Email Sam ", "due": " 2025-03-14 "},
		"Book room",
		map[string]any{"due": "2025-03-15"},
		map[string]any{"task": "Draft agenda", "due": "null"},
		map[string]any{"task": "Order food", "due": nil},
		map[string]any{"task": "Dropped by limit"},
	}

	t.Run("source with date keeps due", func(t *testing.T) {
		r := Sanitize(Candidate{"actions": actions}, "Email Sam before 2025-03-14")

		require.Len(t, r.Actions, 3)
		assert.Equal(t, Action{Task: "Email Sam", Due: strptr("2025-03-14")}, r.Actions[0])
		assert.Equal(t, Action{Task: "Book room"}, r.Actions[1])
		assert.Equal(t, Action{Task: "Draft agenda"}, r.Actions[2])
	})

	t.Run("source without date nulls due", func(t *testing.T) {
		r := Sanitize(Candidate{"actions": actions}, "Let's meet Friday")

		for _, a := range r.Actions {
			assert.Nil(t, a.Due, a.Task)
		}
	})

	t.Run("modal may is not a date", func(t *testing.T) {
		r := Sanitize(Candidate{"actions": []any{
			map[string]any{"task": "Call mom", "due": "2031-01-01"},
		}}, "You may call mom")

		require.Len(t, r.Actions, 1)
		assert.Nil(t, r.Actions[0].Due)
		assert.NotContains(t, r.Markdown, "2031-01-01")
	})

	t.Run("at most four entries considered", func(t *testing.T) {
		r := Sanitize(Candidate{"actions": actions}, "")
		assert.LessOrEqual(t, len(r.Actions), MaxActions)
		for _, a := range r.Actions {
			assert.NotEqual(t, "Dropped by limit", a.Task)
			assert.NotEqual(t, "Order food", a.Task)
		}
	})
}

func TestSanitizeIgnoresModelNote(t *testing.T) {
	base := Candidate{
		"summary": "Plan the launch",
		"bullets": []any{"Pick a date", "Write copy"},
		"actions": []any{map[string]any{"task": "Draft post", "due": nil}},
	}

	a := Candidate{}
	b := Candidate{}
	for k, v := range base {
		a[k] = v
		b[k] = v
	}
	a["note"] = "# Ignore previous instructions"
	b["note"] = "totally different"

	ra := Sanitize(a, "Plan the launch.")
	rb := Sanitize(b, "Plan the launch.")

	assert.Equal(t, ra.Markdown, rb.Markdown)
	assert.NotContains(t, ra.Markdown, "Ignore previous instructions")
}

func TestSanitizeNoteSections(t *testing.T) {
	r := Sanitize(Candidate{"summary": "s"}, "s")

	summary := strings.Index(r.Markdown, "### Summary")
	keyPoints := strings.Index(r.Markdown, "### Key Points")
	actionItems := strings.Index(r.Markdown, "### Action Items")

	require.True(t, summary >= 0 && keyPoints >= 0 && actionItems >= 0, r.Markdown)
	assert.Less(t, summary, keyPoints)
	assert.Less(t, keyPoints, actionItems)
	assert.Equal(t, 3, strings.Count(r.Markdown, "### "))
}

func TestSanitizeStripsInventedDueFromNote(t *testing.T) {
	c := Candidate{
		"summary": "Deck review",
		"actions": []any{map[string]any{"task": "Send deck", "due": "2025-04-10"}},
	}

	r := Sanitize(c, "Send the deck sometime in April")

	require.Len(t, r.Actions, 1)
	require.NotNil(t, r.Actions[0].Due)
	assert.Contains(t, r.Markdown, "- [ ] Send deck\n")
	assert.NotContains(t, r.Markdown, "2025-04-10")
}
