package slackify

import (
	"github.com/riverfjs/slackify-go/internal/types"
)

// Dialect selects the shape of the converted output.
type Dialect int

const (
	// DialectSections produces section, header and divider blocks with mrkdwn text.
	DialectSections Dialect = iota
	// DialectRichText produces rich_text, header and divider blocks.
	DialectRichText
	// DialectMrkdwn produces text-only messages in Slack mrkdwn.
	DialectMrkdwn
)

// String returns the string representation of Dialect.
func (d Dialect) String() string {
	switch d {
	case DialectSections:
		return "sections"
	case DialectRichText:
		return "rich_text"
	case DialectMrkdwn:
		return "mrkdwn"
	default:
		return "unknown"
	}
}

// 导出类型别名
type (
	Block                = types.Block
	BlockType            = types.BlockType
	TextObject           = types.TextObject
	SectionBlock         = types.SectionBlock
	HeaderBlock          = types.HeaderBlock
	DividerBlock         = types.DividerBlock
	RichTextBlock        = types.RichTextBlock
	RichTextElement      = types.RichTextElement
	RichTextSection      = types.RichTextSection
	RichTextList         = types.RichTextList
	RichTextQuote        = types.RichTextQuote
	RichTextPreformatted = types.RichTextPreformatted
	InlineElement        = types.InlineElement
	TextElement          = types.TextElement
	LinkElement          = types.LinkElement
	TextStyle            = types.TextStyle
	ListStyle            = types.ListStyle
)

const (
	BlockSection  = types.BlockSection
	BlockHeader   = types.BlockHeader
	BlockDivider  = types.BlockDivider
	BlockRichText = types.BlockRichText

	ListBullet  = types.ListBullet
	ListOrdered = types.ListOrdered
)

// Message is one chat.postMessage worth of content: notification text and
// at most RenderConfig.MaxBlocks blocks. Text-only messages have no blocks.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}
