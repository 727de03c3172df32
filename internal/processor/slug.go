package processor

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxSlugLen = 80

// Slugify turns a title into a lowercase, filesystem-safe name: NFKC
// normalization, letters and digits kept, everything else collapsed to "-".
func Slugify(title string) string {
	title = strings.ToLower(norm.NFKC.String(title))

	var b strings.Builder
	dash := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if r := []rune(slug); len(r) > maxSlugLen {
		slug = strings.Trim(string(r[:maxSlugLen]), "-")
	}
	if slug == "" {
		return "note"
	}
	return slug
}
