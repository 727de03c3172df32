package note

import "strings"

// Render builds the three-section markdown note. The output depends only on
// its arguments.
func Render(summary string, bullets []string, actions []Action) string {
	var b strings.Builder

	b.WriteString("### Summary\n")
	b.WriteString(summary)
	b.WriteString("\n\n### Key Points\n")
	if len(bullets) == 0 {
		b.WriteString("- None\n")
	}
	for _, bullet := range bullets {
		b.WriteString(bullet)
		b.WriteString("\n")
	}

	b.WriteString("\n### Action Items\n")
	if len(actions) == 0 {
		b.WriteString("- None\n")
	}
	for _, a := range actions {
		b.WriteString("- [ ] ")
		b.WriteString(a.Task)
		if a.Due != nil {
			b.WriteString(" (due: ")
			b.WriteString(*a.Due)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}

	return b.String()
}
