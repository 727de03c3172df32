package note

import (
	"strconv"
	"strings"
)

// SummaryMaxRunes bounds summaries that are derived from source text.
const SummaryMaxRunes = 140

// Sanitize coerces a candidate into a Result. It never fails: missing or
// mistyped fields become empty values. Any "note" in the candidate is ignored
// and the markdown is rendered from the sanitized fields.
func Sanitize(c Candidate, source string) Result {
	r := Result{
		Summary: sanitizeSummary(c["summary"], source),
		Bullets: sanitizeBullets(c["bullets"]),
		Actions: sanitizeActions(c["actions"], HasDate(source)),
	}
	r.Markdown = stripUngroundedDates(Render(r.Summary, r.Bullets, r.Actions), source)
	return r
}

func sanitizeSummary(v any, source string) string {
	if s, ok := v.(string); ok {
		if s = collapse(s); s != "" {
			return s
		}
	}
	if sentences := Sentences(source); len(sentences) > 0 {
		return Truncate(sentences[0], SummaryMaxRunes)
	}
	return "No summary available."
}

func sanitizeBullets(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if strs, isStrings := v.([]string); isStrings {
			for _, s := range strs {
				items = append(items, s)
			}
		}
	}

	bullets := make([]string, 0, MaxBullets)
	for _, item := range items {
		if len(bullets) == MaxBullets {
			break
		}
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = stripMarker(collapse(s)); s == "" {
			continue
		}
		bullets = append(bullets, BulletMarker+s)
	}
	return bullets
}

// stripMarker removes a leading list marker so it can be replaced with BulletMarker.
func stripMarker(s string) string {
	if strings.HasPrefix(s, "•") {
		return strings.TrimSpace(strings.TrimPrefix(s, "•"))
	}
	for _, m := range []string{"- ", "* "} {
		if strings.HasPrefix(s, m) {
			return strings.TrimSpace(strings.TrimPrefix(s, m))
		}
	}
	return s
}

func sanitizeActions(v any, keepDue bool) []Action {
	items, _ := v.([]any)
	if len(items) > MaxActions {
		items = items[:MaxActions]
	}

	actions := make([]Action, 0, len(items))
	for _, item := range items {
		var a Action
		switch e := item.(type) {
		case string:
			a.Task = collapse(e)
		case map[string]any:
			a.Task = collapse(stringOf(e["task"]))
			if keepDue {
				a.Due = dueOf(e["due"])
			}
		}
		if a.Task == "" {
			continue
		}
		actions = append(actions, a)
	}
	return actions
}

func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func dueOf(v any) *string {
	s := strings.TrimSpace(stringOf(v))
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return nil
	}
	return &s
}
