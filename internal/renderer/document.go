package renderer

import (
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

// Document is the digest before it is written in any format.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one header of the digest and the summaries under it.
type Section struct {
	Heading string
	Entries []Entry
}

// Entry is one summarized transcript.
type Entry struct {
	Key     string
	Meeting Meeting
	Summary string
}

// Build groups record by meeting time. Keys are visited in sorted order and a new
// section starts whenever the heading differs from the previous key's.
func Build(title string, record summarizer.Record) (Document, error) {
	doc := Document{Title: title}

	current := ""
	for _, key := range record.Keys() {
		m, err := ParseMeeting(key)
		if err != nil {
			return Document{}, err
		}

		if h := m.Heading(); h != current {
			doc.Sections = append(doc.Sections, Section{Heading: h})
			current = h
		}
		last := &doc.Sections[len(doc.Sections)-1]
		last.Entries = append(last.Entries, Entry{Key: key, Meeting: m, Summary: record[key].Summary})
	}

	return doc, nil
}

// Markdown renders doc as a single top-level title and one second-level header per section.
func (d Document) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# " + d.Title + "\n")
	for _, s := range d.Sections {
		sb.WriteString("\n## " + s.Heading + "\n")
		for _, e := range s.Entries {
			sb.WriteString(e.Summary + "\n")
		}
	}
	return sb.String()
}
