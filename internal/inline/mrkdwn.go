package inline

import (
	"regexp"
	"strings"
)

// mrkdwnRe matches, in priority order: inline code and Slack-native
// references (passed through untouched), bold+italic, bold, italic,
// strikethrough and Markdown links. One pass means a converted `*bold*` is
// never read again as italic.
var mrkdwnRe = regexp.MustCompile(
	"(`[^`]+`)" + // 1 inline code
		`|(<(?:https?://|mailto:|[@#!])[^>]+>)` + // 2 slack link / mention
		`|\*\*\*(.+?)\*\*\*|___(.+?)___` + // 3,4 bold+italic
		`|\*\*(.+?)\*\*|__(.+?)__` + // 5,6 bold
		`|\*(.+?)\*|_(.+?)_` + // 7,8 italic
		`|~~(.+?)~~` + // 9 strike
		`|!?\[([^\]]*)\]\(([^)\s]+)\)`, // 10,11 link
)

// FormatMrkdwn rewrites Markdown inline markup into Slack mrkdwn:
// **x** and __x__ become *x*, *x* and _x_ become _x_, ~~x~~ becomes ~x~ and
// [t](u) becomes <u|t>. Inline code is left unchanged.
func FormatMrkdwn(text string) string {
	matches := mrkdwnRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, loc := range matches {
		sb.WriteString(text[last:loc[0]])
		g := groups(text, loc)
		switch {
		case loc[2] >= 0, loc[4] >= 0:
			sb.WriteString(g[0])
		case loc[6] >= 0 || loc[8] >= 0:
			sb.WriteString("*_" + FormatMrkdwn(g[3]+g[4]) + "_*")
		case loc[10] >= 0 || loc[12] >= 0:
			sb.WriteString("*" + FormatMrkdwn(g[5]+g[6]) + "*")
		case loc[14] >= 0 || loc[16] >= 0:
			sb.WriteString("_" + FormatMrkdwn(g[7]+g[8]) + "_")
		case loc[18] >= 0:
			sb.WriteString("~" + FormatMrkdwn(g[9]) + "~")
		default:
			label := g[10]
			if label == "" {
				label = g[11]
			}
			sb.WriteString("<" + g[11] + "|" + label + ">")
		}
		last = loc[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}
