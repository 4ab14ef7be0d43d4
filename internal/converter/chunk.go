package converter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/slackify-go/internal/types"
)

var defaultSentenceRe = regexp.MustCompile(types.DefaultSentencePattern)

// RuneLen returns the length of text in characters, the unit Slack uses for
// its text limits.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

// truncate cuts text to at most limit characters.
func truncate(text string, limit int) string {
	if RuneLen(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}

// orSpace returns a single space for empty or whitespace-only text; Slack
// rejects empty text fields.
func orSpace(text string) string {
	if strings.TrimSpace(text) == "" {
		return " "
	}
	return text
}

// ChunkText splits text into chunks of at most limit characters.
//
// Text that fits is returned unchanged as a single chunk. Longer text is cut
// after every match of sentence (default: runs of . ! ? followed by
// whitespace) and the sentences are packed greedily; each chunk is trimmed.
// A sentence longer than limit on its own is hard split at the limit.
func ChunkText(text string, limit int, sentence *regexp.Regexp) []string {
	if limit <= 0 {
		limit = types.DefaultTextLimit
	}
	if sentence == nil {
		sentence = defaultSentenceRe
	}
	if RuneLen(text) <= limit {
		return []string{text}
	}

	var chunks []string
	current := ""
	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			chunks = append(chunks, s)
		}
		current = ""
	}

	for _, s := range splitSentences(text, sentence) {
		if RuneLen(strings.TrimSpace(current+s)) <= limit {
			current += s
			continue
		}
		flush()
		for RuneLen(strings.TrimSpace(s)) > limit {
			s = strings.TrimLeftFunc(s, unicode.IsSpace)
			head := truncate(s, limit)
			chunks = append(chunks, strings.TrimSpace(head))
			s = s[len(head):]
		}
		current = s
	}
	flush()
	return chunks
}

// splitSentences cuts text after each delimiter match. Delimiters stay
// attached to the sentence they end, so joining the result gives text back.
func splitSentences(text string, sentence *regexp.Regexp) []string {
	var out []string
	last := 0
	for _, loc := range sentence.FindAllStringIndex(text, -1) {
		if loc[1] == loc[0] {
			continue
		}
		out = append(out, text[last:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, text[last:])
	}
	return out
}
