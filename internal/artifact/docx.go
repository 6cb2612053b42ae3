package artifact

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var reLineHead = regexp.MustCompile(`^(\[[^\]]+\])\s*(Speaker [^:]+:)?\s*(.*)$`)

// writeDocx renders the bullet summary followed by the transcript. All text is
// written verbatim; the summary prompt asks for plain prose.
func writeDocx(a Artifacts, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), a.Name, true, 16)
	addStyledRun(doc.AddParagraph(""), a.Generated.Format("2006-01-02 15:04"), false, 11)

	addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
	if len(a.Bullets) == 0 {
		addStyledRun(doc.AddParagraph(""), "No summary points.", false, fontSize)
	}
	for _, b := range a.Bullets {
		addStyledRun(doc.AddParagraph(""), "• "+strings.TrimPrefix(b, "- "), false, fontSize)
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, line := range strings.Split(a.Transcript, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		addTranscriptLine(doc.AddParagraph(""), line)
	}

	return doc.SaveTo(outputPath)
}

// addTranscriptLine prints the timestamp in gray and the speaker label in bold.
func addTranscriptLine(p *docx.Paragraph, line string) {
	m := reLineHead.FindStringSubmatch(line)
	if m == nil {
		p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
		return
	}
	p.AddText(m[1] + " ").Font(fontName).Size(fontSize).Color("808080")
	if m[2] != "" {
		p.AddText(m[2] + " ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
	}
	p.AddText(m[3]).Font(fontName).Size(fontSize).Color("000000")
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
