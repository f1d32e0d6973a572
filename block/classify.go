package block

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type is the structural type of a block.
type Type int

const (
	Paragraph Type = iota
	Heading
	CodeFence
	Quote
	UnorderedList
	OrderedList
)

var typeNames = map[Type]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	CodeFence:     "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

const (
	fence        = "```"
	quoteMarker  = "> "
	bulletMarker = "- "
)

var (
	headingRegex  = regexp.MustCompile(`^#{1,6} \S`)
	blankRunRegex = regexp.MustCompile(`\n{2,}`)
)

// Split breaks a document into blocks on runs of two or more newlines.
// Blocks are trimmed and empty blocks are dropped.
func Split(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")
	var blocks []string
	for _, candidate := range blankRunRegex.Split(document, -1) {
		if clean := strings.TrimSpace(candidate); clean != "" {
			blocks = append(blocks, clean)
		}
	}
	return blocks
}

// Classify returns the type of a trimmed block. The first matching rule
// wins; Paragraph is the fallback.
func Classify(block string) Type {
	lines := strings.Split(block, "\n")
	switch {
	case isHeading(block):
		return Heading
	case isCodeFence(lines):
		return CodeFence
	case allLinesPrefixed(lines, quoteMarker):
		return Quote
	case allLinesPrefixed(lines, bulletMarker):
		return UnorderedList
	case isOrderedList(lines):
		return OrderedList
	}
	return Paragraph
}

// HeadingLevel returns the number of leading '#' characters of a block.
func HeadingLevel(block string) int {
	return len(block) - len(strings.TrimLeft(block, "#"))
}

func isHeading(block string) bool {
	return headingRegex.MatchString(block)
}

func isCodeFence(lines []string) bool {
	return len(lines) >= 2 && lines[0] == fence && lines[len(lines)-1] == fence
}

func allLinesPrefixed(lines []string, prefix string) bool {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
