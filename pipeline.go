// Package slackify 将 Markdown 转换为 Slack Block Kit 消息
//
// 这个包提供了将原始 Markdown（包括 LLM 输出、人工撰写的文档等）转换为
// Slack 消息 API 所需格式的功能。
//
// 核心功能：
//   - ToBlocks(): section / header / divider 块，文本为 mrkdwn，超长文本按句子拆分
//   - ToRichText(): rich_text 块，列表、引用、代码块为结构化元素
//   - ToMrkdwn(): 完整文档转换为 mrkdwn 纯文本（基于 goldmark）
//   - Slackify(): 完整处理，按每条消息的块数与长度限制拆分为多条消息
//
// 示例：
//
//	blocks := slackify.ToBlocks(markdown)
//
//	messages, err := slackify.Slackify(ctx, markdown, slackify.WithDialect(slackify.DialectRichText))
//	for _, msg := range messages {
//	    // chat.postMessage(text=msg.Text, blocks=msg.Blocks)
//	}
//
// 附件链接改写等预处理必须在转换之前完成，转换器将链接 URL 视为不透明字符串。
package slackify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/riverfjs/slackify-go/internal/converter"
	"github.com/riverfjs/slackify-go/internal/inline"
	"github.com/riverfjs/slackify-go/internal/parser"
	"github.com/riverfjs/slackify-go/internal/types"
)

// Slackify 将 Markdown 转换为可直接发送的 Slack 消息列表
//
// 参数：
//   - ctx: 上下文
//   - content: 原始 Markdown 文本
//   - opts: 转换选项；WithDialect 选择输出格式（默认 DialectSections）
//
// 返回：
//   - []Message: 有序消息列表，每条消息最多 MaxBlocks 个块，
//     text 不超过 MaxMessageLength 个字符
//   - error: 选项无效或 ctx 被取消
func Slackify(ctx context.Context, content string, opts ...Option) ([]Message, error) {
	options := applyOptions(opts...)
	if err := options.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		messages []Message
		err      error
		blocks   []Block
	)
	switch options.Dialect {
	case DialectSections:
		blocks = withBlockIDs(converter.Sections(content, options.converterOptions()), options.BlockIDs)
		messages, err = groupBlocks(ctx, blocks, options.Config)
	case DialectRichText:
		blocks = withBlockIDs(converter.RichText(content, options.converterOptions()), options.BlockIDs)
		messages, err = groupBlocks(ctx, blocks, options.Config)
	case DialectMrkdwn:
		messages, err = textMessages(ctx, content, options.Config)
	default:
		return nil, fmt.Errorf("unknown dialect %d", int(options.Dialect))
	}
	if err != nil {
		return nil, err
	}

	Logger.Debug("converted markdown",
		"dialect", options.Dialect,
		"blocks", len(blocks),
		"messages", len(messages))
	return messages, nil
}

// groupBlocks packs blocks into messages of at most MaxBlocks blocks.
func groupBlocks(ctx context.Context, blocks []Block, cfg *RenderConfig) ([]Message, error) {
	result := make([]Message, 0, len(blocks)/cfg.MaxBlocks+1)
	for start := 0; start < len(blocks); start += cfg.MaxBlocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+cfg.MaxBlocks, len(blocks))
		group := blocks[start:end]
		result = append(result, Message{
			Text:   fallbackText(group, cfg.MaxMessageLength),
			Blocks: group,
		})
	}
	return result, nil
}

// textMessages renders the document as mrkdwn and splits it by MaxMessageLength.
func textMessages(ctx context.Context, content string, cfg *RenderConfig) ([]Message, error) {
	bullet := ""
	if cfg.MarkdownSymbol != nil {
		bullet = cfg.MarkdownSymbol.Bullet
	}
	text := parser.RenderMrkdwn(content, bullet)

	result := make([]Message, 0)
	for _, chunk := range SplitText(text, cfg.MaxMessageLength) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result = append(result, Message{Text: chunk})
	}
	return result, nil
}

// withBlockIDs assigns a random block_id to every block when enabled.
func withBlockIDs(blocks []Block, enable bool) []Block {
	if !enable {
		return blocks
	}
	for _, b := range blocks {
		types.SetBlockID(b, uuid.NewString())
	}
	return blocks
}

// fallbackText renders blocks as the notification text Slack shows where
// blocks cannot be displayed.
func fallbackText(blocks []Block, maxLen int) string {
	var lines []string
	for _, b := range blocks {
		switch v := b.(type) {
		case *SectionBlock:
			lines = append(lines, v.Text.Text)
		case *HeaderBlock:
			lines = append(lines, v.Text.Text)
		case *DividerBlock:
			lines = append(lines, "———")
		case *RichTextBlock:
			lines = append(lines, richTextLines(v)...)
		}
	}
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if CountText(text) > maxLen {
		text = string([]rune(text)[:maxLen])
	}
	if text == "" {
		return " "
	}
	return text
}

func richTextLines(block *RichTextBlock) []string {
	var lines []string
	for _, el := range block.Elements {
		switch v := el.(type) {
		case *RichTextSection:
			lines = append(lines, inline.PlainText(v.Elements))
		case *RichTextQuote:
			lines = append(lines, strings.TrimRight(inline.PlainText(v.Elements), "\n"))
		case *RichTextPreformatted:
			lines = append(lines, strings.TrimRight(inline.PlainText(v.Elements), "\n"))
		case *RichTextList:
			for i, item := range v.Elements {
				marker := "•"
				if v.Style == ListOrdered {
					marker = strconv.Itoa(i+1) + "."
				}
				lines = append(lines, marker+" "+inline.PlainText(item.Elements))
			}
		}
	}
	return lines
}
