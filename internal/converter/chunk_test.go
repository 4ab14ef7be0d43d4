package converter

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_Fits(t *testing.T) {
	assert.Equal(t, []string{"short text. Two."}, ChunkText("short text. Two.", 740, nil))
}

func TestChunkText_SentencePacking(t *testing.T) {
	sentences := make([]string, 10)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Sentence number %02d is here.", i)
	}
	text := strings.Join(sentences, " ")

	chunks := ChunkText(text, 60, nil)

	// two sentences (55 chars) fit, three do not
	require.Len(t, chunks, 5)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, RuneLen(chunk), 60)
		assert.Equal(t, sentences[2*i]+" "+sentences[2*i+1], chunk)
	}
	assert.Equal(t, text, strings.Join(chunks, " "))
}

func TestChunkText_HardSplit(t *testing.T) {
	chunks := ChunkText(strings.Repeat("x", 25), 10, nil)
	assert.Equal(t, []string{
		strings.Repeat("x", 10),
		strings.Repeat("x", 10),
		strings.Repeat("x", 5),
	}, chunks)
}

func TestChunkText_CustomPattern(t *testing.T) {
	chunks := ChunkText("a; b; c", 3, regexp.MustCompile(`;\s*`))
	assert.Equal(t, []string{"a;", "b;", "c"}, chunks)
}

func TestChunkText_CountsCharacters(t *testing.T) {
	text := strings.Repeat("é", 5)
	assert.Equal(t, []string{text}, ChunkText(text, 5, nil))
}

func TestChunkText_NeverExceedsLimit(t *testing.T) {
	inputs := []string{
		strings.Repeat("word ", 400),
		strings.Repeat("Short one. ", 200),
		strings.Repeat("a", 3000) + ". tail",
		strings.Repeat("Mixed! sentence? ", 90) + strings.Repeat("z", 900),
	}
	for i, input := range inputs {
		for _, chunk := range ChunkText(input, 100, nil) {
			assert.LessOrEqualf(t, RuneLen(chunk), 100, "input %d", i)
			assert.NotEmpty(t, chunk)
		}
	}
}
