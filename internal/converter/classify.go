package converter

import (
	"regexp"
	"strings"
)

// LineKind is the structural category of one source line.
type LineKind int

const (
	LineParagraph LineKind = iota
	LineDivider
	LineFence
	LineHeader
	LineBullet
	LineOrdered
	LineQuote
	LineBlank
)

// String returns the string representation of LineKind.
func (k LineKind) String() string {
	switch k {
	case LineParagraph:
		return "paragraph"
	case LineDivider:
		return "divider"
	case LineFence:
		return "fence"
	case LineHeader:
		return "header"
	case LineBullet:
		return "bullet"
	case LineOrdered:
		return "ordered"
	case LineQuote:
		return "quote"
	case LineBlank:
		return "blank"
	default:
		return "unknown"
	}
}

const fenceMarker = "```"

var (
	// RE2 has no backreferences, so each divider character gets its own branch.
	dividerRe = regexp.MustCompile(`^\s*(?:(?:\*\s*){3,}|(?:-\s*){3,}|(?:_\s*){3,})$`)
	bulletRe  = regexp.MustCompile(`^\s*[-*+]\s`)
	orderedRe = regexp.MustCompile(`^\s*\d+\.\s`)
	quoteRe   = regexp.MustCompile(`^>(?: |$)`)
	headerRe  = regexp.MustCompile(`^#+`)
)

// Classify returns the category of line. Checks run in priority order and
// the first match wins. Callers handle fenced regions themselves: inside a
// fence only LineFence matters.
func Classify(line string) LineKind {
	switch {
	case dividerRe.MatchString(line):
		return LineDivider
	case strings.HasPrefix(line, fenceMarker):
		return LineFence
	case strings.HasPrefix(line, "#"):
		return LineHeader
	case bulletRe.MatchString(line):
		return LineBullet
	case orderedRe.MatchString(line):
		return LineOrdered
	case quoteRe.MatchString(line):
		return LineQuote
	case strings.TrimSpace(line) == "":
		return LineBlank
	default:
		return LineParagraph
	}
}

// IsList reports whether k is a bullet or ordered item.
func (k LineKind) IsList() bool {
	return k == LineBullet || k == LineOrdered
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// headerText strips the leading # run and surrounding whitespace.
func headerText(line string) string {
	return strings.TrimSpace(line[len(headerRe.FindString(line)):])
}

// stripListMarker removes the bullet or ordered marker and the whitespace
// character that follows it.
func stripListMarker(line string, kind LineKind) string {
	re := bulletRe
	if kind == LineOrdered {
		re = orderedRe
	}
	return line[len(re.FindString(line)):]
}

// stripQuoteMarker removes the leading > and one following space.
func stripQuoteMarker(line string) string {
	line = strings.TrimPrefix(line, ">")
	return strings.TrimPrefix(line, " ")
}
