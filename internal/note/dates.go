package note

import "regexp"

var (
	reNumericDate = regexp.MustCompile(`\b(\d{4}[-/.]\d{1,2}[-/.]\d{1,2}|\d{1,2}[-/.]\d{1,2}[-/.]\d{4})\b`)
	reMonthName   = regexp.MustCompile(`(?i)\b(jan(uary)?|feb(ruary)?|apr(il)?|june?|july?|aug(ust)?|sep(t|tember)?|oct(ober)?|nov(ember)?|dec(ember)?)\b`)
	reEmptyDue    = regexp.MustCompile(`\s*\(due:\s*\)`)
	reMultiSpace  = regexp.MustCompile(`[ \t]{2,}`)
	reLineEndWS   = regexp.MustCompile(`[ \t]+\n`)
)

// "may" and "march" are also everyday words: they count only when capitalized
// or next to a day number.
var reVerbMonth = regexp.MustCompile(`\b(May|March|Mar)\b|(?i:\b(may|mar(ch)?)\s+\d{1,2}(st|nd|rd|th)?\b|\b\d{1,2}(st|nd|rd|th)?\s+(of\s+)?(may|mar(ch)?)\b)`)

// HasDate reports whether text mentions a calendar date or a month name.
// Heuristic: house numbers can match and relative dates ("next Tuesday") do not.
func HasDate(text string) bool {
	return reNumericDate.MatchString(text) || reMonthName.MatchString(text) || reVerbMonth.MatchString(text)
}

// stripUngroundedDates removes numeric dates from md that do not occur in source.
func stripUngroundedDates(md, source string) string {
	grounded := make(map[string]bool)
	for _, d := range reNumericDate.FindAllString(source, -1) {
		grounded[d] = true
	}

	out := reNumericDate.ReplaceAllStringFunc(md, func(d string) string {
		if grounded[d] {
			return d
		}
		return ""
	})
	if out == md {
		return md
	}
	out = reEmptyDue.ReplaceAllString(out, "")
	out = reMultiSpace.ReplaceAllString(out, " ")
	return reLineEndWS.ReplaceAllString(out, "\n")
}
