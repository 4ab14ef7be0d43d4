// Package inline turns a single line of Markdown into inline output: typed
// rich text elements for the rich_text dialect, or a Slack mrkdwn string for
// the section dialect.
package inline

import (
	"regexp"

	"github.com/riverfjs/slackify-go/internal/types"
)

// rule pairs a pattern with the element it produces. Group 1 is always the
// inner text; the link rule also captures the URL in group 2.
type rule struct {
	re    *regexp.Regexp
	build func(groups []string) types.InlineElement
}

func styled(style types.TextStyle) func([]string) types.InlineElement {
	return func(groups []string) types.InlineElement {
		return types.NewText(groups[1], style)
	}
}

var (
	boldItalic = types.TextStyle{Bold: true, Italic: true}
	bold       = types.TextStyle{Bold: true}
	italic     = types.TextStyle{Italic: true}
	code       = types.TextStyle{Code: true}
	strike     = types.TextStyle{Strike: true}
)

// rules are ordered by priority. When two rules match at the same offset the
// earlier one wins.
var rules = []rule{
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), styled(boldItalic)},
	{regexp.MustCompile(`___(.+?)___`), styled(boldItalic)},
	{regexp.MustCompile(`\*\*_(.+?)_\*\*`), styled(boldItalic)},
	{regexp.MustCompile(`__\*(.+?)\*__`), styled(boldItalic)},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), styled(bold)},
	{regexp.MustCompile(`__(.+?)__`), styled(bold)},
	{regexp.MustCompile(`\*(.+?)\*`), styled(italic)},
	{regexp.MustCompile(`_(.+?)_`), styled(italic)},
	{regexp.MustCompile("`(.+?)`"), styled(code)},
	{regexp.MustCompile(`~~(.+?)~~`), styled(strike)},
	{regexp.MustCompile(`!?\[(.*?)\]\((.*?)\)`), func(groups []string) types.InlineElement {
		return types.NewLink(groups[1], groups[2])
	}},
}

// Tokenize splits line into inline elements. The elements cover the whole
// line in order; text outside any match becomes an unstyled text element and
// unterminated markers stay literal.
func Tokenize(line string) []types.InlineElement {
	var out []types.InlineElement
	pos := 0
	for pos < len(line) {
		rest := line[pos:]
		best := -1
		var bestLoc []int
		for i, r := range rules {
			loc := r.re.FindStringSubmatchIndex(rest)
			if loc == nil {
				continue
			}
			if best == -1 || loc[0] < bestLoc[0] {
				best, bestLoc = i, loc
			}
		}
		if best == -1 {
			out = append(out, types.NewText(rest, types.TextStyle{}))
			break
		}
		if bestLoc[0] > 0 {
			out = append(out, types.NewText(rest[:bestLoc[0]], types.TextStyle{}))
		}
		out = append(out, rules[best].build(groups(rest, bestLoc)))
		pos += bestLoc[1]
	}
	return out
}

// groups expands a submatch index slice into strings; unmatched groups are "".
func groups(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}

// PlainText concatenates the visible text of elements.
func PlainText(elements []types.InlineElement) string {
	n := 0
	for _, el := range elements {
		n += len(el.Content())
	}
	buf := make([]byte, 0, n)
	for _, el := range elements {
		buf = append(buf, el.Content()...)
	}
	return string(buf)
}
