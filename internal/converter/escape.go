package converter

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder delimiters from the Unicode private use area.
const (
	refOpen  = "\uE000"
	refClose = "\uE001"
)

var (
	// codeRegionRe matches fenced code blocks and inline code.
	codeRegionRe = regexp.MustCompile("(```[\\s\\S]*?```|`[^`\\n]+`)")

	// slackRefRe matches references Slack already understands: user, channel
	// and special mentions, and <url|label> links written by upstream link
	// rewriting.
	slackRefRe = regexp.MustCompile(`<(?:[@#!][^<>\s]+|(?:https?://|mailto:)[^<>\s|]+\|[^<>\n]+)>`)

	placeholderRe = regexp.MustCompile(refOpen + `(\d+)` + refClose)

	mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// EscapeMrkdwn escapes the three characters Slack treats as control
// characters in message text.
func EscapeMrkdwn(text string) string {
	return mrkdwnEscaper.Replace(text)
}

// ProtectSlackRefs replaces Slack-native references outside code regions with
// private-use placeholders so the Markdown parser and escaping leave them
// alone. RestoreSlackRefs puts them back.
func ProtectSlackRefs(text string) (string, []string) {
	var refs []string
	parts := codeRegionRe.Split(text, -1)
	matches := codeRegionRe.FindAllString(text, -1)

	var result strings.Builder
	for i, part := range parts {
		part = slackRefRe.ReplaceAllStringFunc(part, func(ref string) string {
			refs = append(refs, ref)
			return refOpen + strconv.Itoa(len(refs)-1) + refClose
		})
		result.WriteString(part)
		if i < len(matches) {
			result.WriteString(matches[i])
		}
	}
	return result.String(), refs
}

// RestoreSlackRefs reverses ProtectSlackRefs.
func RestoreSlackRefs(text string, refs []string) string {
	if len(refs) == 0 {
		return text
	}
	return placeholderRe.ReplaceAllStringFunc(text, func(ph string) string {
		idx, err := strconv.Atoi(placeholderRe.FindStringSubmatch(ph)[1])
		if err != nil || idx >= len(refs) {
			return ph
		}
		return refs[idx]
	})
}
