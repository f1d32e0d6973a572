package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnbalancedDelimiter is returned when an emphasis or code marker has no
// closing partner.
var ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")

var (
	imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRegex  = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
)

type delimiter struct {
	marker string
	kind   Kind
}

// Code comes first so that emphasis markers inside backticks stay literal,
// and ** comes before * because * is a prefix of it.
var delimiters = []delimiter{
	{marker: "`", kind: Code},
	{marker: "**", kind: Bold},
	{marker: "*", kind: Italic},
	{marker: "_", kind: Italic},
}

// Tokenize splits text into spans. Images are extracted first, then links,
// then code, bold and italic delimiter pairs. Only plain spans are searched
// by later passes, so emphasis is never nested: the text of a bold span keeps
// any inner markers literally.
//
// Empty input yields no spans. A marker without a partner fails with
// ErrUnbalancedDelimiter.
func Tokenize(text string) ([]Span, error) {
	if text == "" {
		return nil, nil
	}
	spans := []Span{{Kind: Plain, Text: text}}
	spans = splitPattern(spans, imageRegex, Image)
	spans = splitPattern(spans, linkRegex, Link)
	for _, d := range delimiters {
		var err error
		spans, err = splitDelimiter(spans, d.marker, d.kind)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// splitPattern extracts every match of re from the plain spans as a span of
// the given kind, using the first group as text and the second as URL.
func splitPattern(spans []Span, re *regexp.Regexp, kind Kind) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		matches := re.FindAllStringSubmatchIndex(s.Text, -1)
		if matches == nil {
			out = append(out, s)
			continue
		}
		last := 0
		for _, m := range matches {
			out = appendPlain(out, s.Text[last:m[0]])
			out = append(out, Span{
				Kind: kind,
				Text: s.Text[m[2]:m[3]],
				URL:  s.Text[m[4]:m[5]],
			})
			last = m[1]
		}
		out = appendPlain(out, s.Text[last:])
	}
	return out
}

// splitDelimiter splits each plain span on marker. Text between a pair of
// markers becomes a span of the given kind, even when empty.
func splitDelimiter(spans []Span, marker string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain || !strings.Contains(s.Text, marker) {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.Text, marker)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnbalancedDelimiter, marker, s.Text)
		}
		for i, part := range parts {
			if i%2 == 0 {
				out = appendPlain(out, part)
				continue
			}
			out = append(out, Span{Kind: kind, Text: part})
		}
	}
	return out, nil
}

func appendPlain(spans []Span, text string) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Span{Kind: Plain, Text: text})
}
