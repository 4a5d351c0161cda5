package renderer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont      = "Times New Roman"
	docxBodySize  = 13
	docxTitleSize = 16
	docxHeadSize  = 15
	docxColor     = "000000"
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// writeDocx lays doc out the same way as the markdown: a title, one heading per
// meeting time, then every summary line as its own paragraph.
func writeDocx(doc Document, path string) error {
	out, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(out.AddParagraph(""), doc.Title, docxTitleSize)
	for _, s := range doc.Sections {
		addHeading(out.AddParagraph(""), s.Heading, docxHeadSize)
		for _, e := range s.Entries {
			for _, line := range strings.Split(e.Summary, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if m := reBullet.FindStringSubmatch(line); m != nil {
					line = "• " + m[1]
				}
				addSummaryLine(out.AddParagraph(""), line)
			}
		}
	}

	return out.SaveTo(path)
}

func addHeading(p *docx.Paragraph, text string, size uint64) {
	p.AddText(stripInline(text)).Font(docxFont).Size(size).Color(docxColor).Bold(true)
}

// addSummaryLine keeps **bold** spans bold and drops other inline markup.
func addSummaryLine(p *docx.Paragraph, text string) {
	plain := reBold.Split(text, -1)
	bold := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range plain {
		if part != "" {
			p.AddText(stripInline(part)).Font(docxFont).Size(docxBodySize).Color(docxColor)
		}
		if i < len(bold) {
			p.AddText(stripInline(bold[i][1])).Font(docxFont).Size(docxBodySize).Color(docxColor).Bold(true)
		}
	}
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
