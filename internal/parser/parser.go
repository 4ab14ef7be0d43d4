package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/slackify-go/internal/converter"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists, autolinks)
	),
}

// RenderMrkdwn 解析 Markdown 并遍历 AST 生成 Slack mrkdwn 文本
func RenderMrkdwn(markdown string, bullet string) string {
	protected, refs := converter.ProtectSlackRefs(strings.ReplaceAll(markdown, "\r\n", "\n"))

	source := []byte(protected)
	node := ParseAST(source)

	walker := converter.NewMrkdwnWalker(source, bullet)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	out := converter.RestoreSlackRefs(walker.Result(), refs)
	return strings.TrimSpace(out)
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
