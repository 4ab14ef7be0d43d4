package slackify

import (
	"github.com/riverfjs/slackify-go/internal/converter"
	"github.com/riverfjs/slackify-go/internal/parser"
)

// ToBlocks 将 Markdown 转换为 section / header / divider 块
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项（WithTextLimit、WithHeaderLimit、WithSentencePattern 等）
//
// 返回:
//   - []Block: 文本为 mrkdwn 的块列表，section 文本不超过 TextLimit，
//     header 文本不超过 HeaderLimit
func ToBlocks(markdown string, opts ...Option) []Block {
	options := applyOptions(opts...)
	return withBlockIDs(converter.Sections(markdown, options.converterOptions()), options.BlockIDs)
}

// ToRichText 将 Markdown 转换为 rich_text / header / divider 块
//
// 连续的同类列表项合并为一个列表，连续的引用行合并为一个引用，
// 代码块转换为 rich_text_preformatted。
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项
//
// 返回:
//   - []Block: 块列表
func ToRichText(markdown string, opts ...Option) []Block {
	options := applyOptions(opts...)
	return withBlockIDs(converter.RichText(markdown, options.converterOptions()), options.BlockIDs)
}

// ToMrkdwn 将完整的 Markdown 文档转换为 Slack mrkdwn 文本
//
// 使用 goldmark 解析（GFM），适用于只能发送纯文本的场景，
// 例如消息的 text 字段或通知内容。
func ToMrkdwn(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	bullet := ""
	if options.Config.MarkdownSymbol != nil {
		bullet = options.Config.MarkdownSymbol.Bullet
	}
	return parser.RenderMrkdwn(markdown, bullet)
}

// ChunkText splits text into chunks of at most limit characters, cutting at
// sentence boundaries (., ! or ? followed by whitespace) where possible.
func ChunkText(text string, limit int) []string {
	return converter.ChunkText(text, limit, nil)
}
