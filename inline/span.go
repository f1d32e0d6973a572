// Package inline splits the text of a Markdown block into typed spans
// (plain, bold, italic, code, link, image) and lowers them to HTML leaves.
package inline

import "fmt"

// Kind identifies the type of an inline span.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = map[Kind]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a fragment of inline text. URL is set for Link and Image only.
type Span struct {
	Kind Kind
	Text string
	URL  string
}

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("Span(%s, %q, %q)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("Span(%s, %q)", s.Kind, s.Text)
}
