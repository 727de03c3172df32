package summarizer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/swift-scribe/internal/note"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// WriteDocx renders r as a styled Word document at outputPath. The layout
// mirrors note.Render: Summary, Key Points, Action Items.
func WriteDocx(title string, r note.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	if title != "" {
		addStyledRun(doc.AddParagraph(""), title, true, 16)
	}

	addStyledRun(doc.AddParagraph(""), "Summary", true, 14)
	addRichText(doc.AddParagraph(""), r.Summary)

	addStyledRun(doc.AddParagraph(""), "Key Points", true, 14)
	if len(r.Bullets) == 0 {
		addRichText(doc.AddParagraph(""), "None")
	}
	for _, b := range r.Bullets {
		addRichText(doc.AddParagraph(""), b)
	}

	addStyledRun(doc.AddParagraph(""), "Action Items", true, 14)
	if len(r.Actions) == 0 {
		addRichText(doc.AddParagraph(""), "None")
	}
	for _, a := range r.Actions {
		line := "☐ " + a.Task
		if a.Due != nil {
			line += " (due: " + *a.Due + ")"
		}
		addRichText(doc.AddParagraph(""), line)
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText writes text to p, turning **spans** into bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
