package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultRenderConfig().Validate())

	cfg := DefaultRenderConfig()
	cfg.TextLimit = 0
	cfg.MaxBlocks = -1
	cfg.SentencePattern = "("
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text_limit")
	assert.Contains(t, err.Error(), "max_blocks")
	assert.Contains(t, err.Error(), "sentence_pattern")
}

func TestRenderConfig_Clone(t *testing.T) {
	orig := DefaultRenderConfig()
	c := orig.Clone()
	c.MarkdownSymbol.Bullet = "-"
	c.TextLimit = 1
	assert.Equal(t, "•", orig.MarkdownSymbol.Bullet)
	assert.Equal(t, DefaultTextLimit, orig.TextLimit)
}

func TestSetBlockID(t *testing.T) {
	blocks := []Block{NewSection("s"), NewHeader("h"), NewDivider(), NewRichText()}
	for _, b := range blocks {
		SetBlockID(b, "id-1")
		data, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"block_id":"id-1"`, b.BlockType())
	}
}

func TestNewText_DropsZeroStyle(t *testing.T) {
	data, err := json.Marshal(NewText("plain", TextStyle{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"plain"}`, string(data))

	data, err = json.Marshal(NewText("x", TextStyle{Bold: true, Strike: true}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"x","style":{"bold":true,"strike":true}}`, string(data))
}
