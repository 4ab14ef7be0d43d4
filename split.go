package slackify

import (
	"strings"
)

// SplitText splits text into chunks of at most maxLen characters.
//
// Tries to split at newline boundaries and falls back to a hard split when a
// single line is longer than maxLen. Leading and trailing newlines of every
// chunk are stripped and empty chunks are dropped.
func SplitText(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultConfig().MaxMessageLength
	}
	if CountText(text) <= maxLen {
		if stripped := strings.Trim(text, "\n"); stripped != "" {
			return []string{stripped}
		}
		return nil
	}

	runes := []rune(text)
	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + maxLen
		if end >= len(runes) {
			chunks = appendChunk(chunks, string(runes[start:]))
			break
		}

		// Find the last newline that fits within budget
		split := -1
		for i := end; i > start; i-- {
			if runes[i-1] == '\n' {
				split = i
				break
			}
		}
		if split == -1 {
			// No newline split fits -- hard split at maxLen boundary
			split = end
		}

		chunks = appendChunk(chunks, string(runes[start:split]))
		start = split
	}
	return chunks
}

func appendChunk(chunks []string, chunk string) []string {
	if chunk = strings.Trim(chunk, "\n"); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}
