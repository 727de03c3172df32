package note

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reSentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// Sentences splits text at sentence-ending punctuation followed by whitespace.
// The punctuation stays with its sentence; empty pieces are dropped.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var out []string
	start := 0
	for _, loc := range reSentenceEnd.FindAllStringIndex(text, -1) {
		if s := collapse(text[start : loc[0]+1]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s := collapse(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// Truncate shortens s to at most max runes, ending with an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max-1])) + "…"
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
