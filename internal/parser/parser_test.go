package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark/ast"
)

func TestRenderMrkdwn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"emphasis", "**bold** and *it*", "*bold* and _it_"},
		{"heading", "# Title\n\nBody", "*Title*\n\nBody"},
		{"bullet list", "- a\n- b", "• a\n• b"},
		{"ordered list", "1. x\n2. y", "1. x\n2. y"},
		{"ordered list start", "3. x\n4. y", "3. x\n4. y"},
		{"blockquote", "> quoted", "> quoted"},
		{"escaping", "a < b & c", "a &lt; b &amp; c"},
		{"slack mention", "ping <@U123> now", "ping <@U123> now"},
		{"slack link", "see <https://x.io|docs>", "see <https://x.io|docs>"},
		{"link", "[docs](https://u.io)", "<https://u.io|docs>"},
		{"code span", "run `a < b`", "run `a &lt; b`"},
		{"fenced code", "```go\nfmt.Println(1)\n```", "```\nfmt.Println(1)\n```"},
		{"strikethrough", "~~gone~~", "~gone~"},
		{"thematic break", "a\n\n---\n\nb", "a\n\n———\n\nb"},
		{"html dropped", "<div>x</div>\n\ntext", "text"},
		{"crlf", "a\r\n\r\nb", "a\n\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderMrkdwn(tt.input, ""))
		})
	}
}

func TestRenderMrkdwn_CustomBullet(t *testing.T) {
	assert.Equal(t, "▸ a\n▸ b", RenderMrkdwn("* a\n* b", "▸"))
}

func TestRenderMrkdwn_Table(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |"
	assert.Equal(t, "```\na | b\n--+--\n1 | 2\n```", RenderMrkdwn(input, ""))
}

func TestRenderMrkdwn_TaskList(t *testing.T) {
	out := RenderMrkdwn("- [x] done\n- [ ] todo", "")
	assert.Contains(t, out, "☑")
	assert.Contains(t, out, "☐")
	assert.NotContains(t, out, "•")
}

func TestParseAST(t *testing.T) {
	doc := ParseAST([]byte("# h\n\ntext"))
	assert.Equal(t, ast.KindDocument, doc.Kind())
	assert.Equal(t, 2, doc.ChildCount())
	assert.Equal(t, ast.KindHeading, doc.FirstChild().Kind())
}
