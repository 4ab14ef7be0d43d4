package types

// BlockType is the Block Kit "type" discriminator of a top-level block.
type BlockType string

const (
	BlockSection  BlockType = "section"
	BlockHeader   BlockType = "header"
	BlockDivider  BlockType = "divider"
	BlockRichText BlockType = "rich_text"
)

// TextType is the "type" of a text composition object.
type TextType string

const (
	PlainText TextType = "plain_text"
	Mrkdwn    TextType = "mrkdwn"
)

// Block is a top-level Block Kit block.
type Block interface {
	BlockType() BlockType
}

// TextObject 文本组合对象
type TextObject struct {
	Type     TextType `json:"type"`
	Text     string   `json:"text"`
	Verbatim bool     `json:"verbatim,omitempty"`
}

// SectionBlock 文本段落块
type SectionBlock struct {
	Type    BlockType   `json:"type"`
	BlockID string      `json:"block_id,omitempty"`
	Text    *TextObject `json:"text"`
}

// HeaderBlock 标题块，文本始终为 plain_text
type HeaderBlock struct {
	Type    BlockType   `json:"type"`
	BlockID string      `json:"block_id,omitempty"`
	Text    *TextObject `json:"text"`
}

// DividerBlock 分割线块
type DividerBlock struct {
	Type    BlockType `json:"type"`
	BlockID string    `json:"block_id,omitempty"`
}

// RichTextBlock 富文本容器块
type RichTextBlock struct {
	Type     BlockType         `json:"type"`
	BlockID  string            `json:"block_id,omitempty"`
	Elements []RichTextElement `json:"elements"`
}

func (*SectionBlock) BlockType() BlockType  { return BlockSection }
func (*HeaderBlock) BlockType() BlockType   { return BlockHeader }
func (*DividerBlock) BlockType() BlockType  { return BlockDivider }
func (*RichTextBlock) BlockType() BlockType { return BlockRichText }

// NewSection builds a section block with mrkdwn text.
func NewSection(text string) *SectionBlock {
	return &SectionBlock{
		Type: BlockSection,
		Text: &TextObject{Type: Mrkdwn, Text: text},
	}
}

// NewHeader builds a header block with plain text.
func NewHeader(text string) *HeaderBlock {
	return &HeaderBlock{
		Type: BlockHeader,
		Text: &TextObject{Type: PlainText, Text: text},
	}
}

// NewDivider builds a divider block.
func NewDivider() *DividerBlock {
	return &DividerBlock{Type: BlockDivider}
}

// NewRichText builds a rich_text block holding the given elements.
func NewRichText(elements ...RichTextElement) *RichTextBlock {
	return &RichTextBlock{
		Type:     BlockRichText,
		Elements: elements,
	}
}

// SetBlockID sets block_id on any block variant.
func SetBlockID(b Block, id string) {
	switch v := b.(type) {
	case *SectionBlock:
		v.BlockID = id
	case *HeaderBlock:
		v.BlockID = id
	case *DividerBlock:
		v.BlockID = id
	case *RichTextBlock:
		v.BlockID = id
	}
}

// RichTextElementType is the "type" of an element inside a rich_text block.
type RichTextElementType string

const (
	RichTextSectionType      RichTextElementType = "rich_text_section"
	RichTextListType         RichTextElementType = "rich_text_list"
	RichTextQuoteType        RichTextElementType = "rich_text_quote"
	RichTextPreformattedType RichTextElementType = "rich_text_preformatted"
)

// ListStyle is the style of a rich_text_list.
type ListStyle string

const (
	ListBullet  ListStyle = "bullet"
	ListOrdered ListStyle = "ordered"
)

// RichTextElement is a container element of a rich_text block.
type RichTextElement interface {
	RichTextElementType() RichTextElementType
}

// RichTextSection holds a run of inline elements.
type RichTextSection struct {
	Type     RichTextElementType `json:"type"`
	Elements []InlineElement     `json:"elements"`
}

// RichTextList holds one section per list item.
type RichTextList struct {
	Type     RichTextElementType `json:"type"`
	Style    ListStyle           `json:"style"`
	Elements []*RichTextSection  `json:"elements"`
}

// RichTextQuote holds the inline elements of consecutive quote lines.
type RichTextQuote struct {
	Type     RichTextElementType `json:"type"`
	Elements []InlineElement     `json:"elements"`
}

// RichTextPreformatted holds one text run per code line.
type RichTextPreformatted struct {
	Type     RichTextElementType `json:"type"`
	Elements []InlineElement     `json:"elements"`
}

func (*RichTextSection) RichTextElementType() RichTextElementType { return RichTextSectionType }
func (*RichTextList) RichTextElementType() RichTextElementType    { return RichTextListType }
func (*RichTextQuote) RichTextElementType() RichTextElementType   { return RichTextQuoteType }
func (*RichTextPreformatted) RichTextElementType() RichTextElementType {
	return RichTextPreformattedType
}

func NewRichTextSection(elements ...InlineElement) *RichTextSection {
	return &RichTextSection{Type: RichTextSectionType, Elements: elements}
}

func NewRichTextList(style ListStyle, items ...*RichTextSection) *RichTextList {
	return &RichTextList{Type: RichTextListType, Style: style, Elements: items}
}

func NewRichTextQuote(elements ...InlineElement) *RichTextQuote {
	return &RichTextQuote{Type: RichTextQuoteType, Elements: elements}
}

func NewRichTextPreformatted(elements ...InlineElement) *RichTextPreformatted {
	return &RichTextPreformatted{Type: RichTextPreformattedType, Elements: elements}
}

// InlineType is the "type" of a leaf element.
type InlineType string

const (
	InlineText InlineType = "text"
	InlineLink InlineType = "link"
)

// InlineElement is a leaf of a rich text tree.
type InlineElement interface {
	InlineType() InlineType
	// Content returns the visible text of the element.
	Content() string
}

// TextStyle 文本样式标记，全部为 false 时整体省略
type TextStyle struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
	Code   bool `json:"code,omitempty"`
	Strike bool `json:"strike,omitempty"`
}

// IsZero reports whether no flag is set.
func (s TextStyle) IsZero() bool {
	return !s.Bold && !s.Italic && !s.Code && !s.Strike
}

// TextElement 文本片段
type TextElement struct {
	Type  InlineType `json:"type"`
	Text  string     `json:"text"`
	Style *TextStyle `json:"style,omitempty"`
}

// LinkElement 链接片段
type LinkElement struct {
	Type InlineType `json:"type"`
	Text string     `json:"text"`
	URL  string     `json:"url"`
}

func (*TextElement) InlineType() InlineType { return InlineText }
func (*LinkElement) InlineType() InlineType { return InlineLink }

func (e *TextElement) Content() string { return e.Text }
func (e *LinkElement) Content() string { return e.Text }

// NewText builds a text element; a zero style is dropped from the payload.
func NewText(text string, style TextStyle) *TextElement {
	el := &TextElement{Type: InlineText, Text: text}
	if !style.IsZero() {
		el.Style = &style
	}
	return el
}

// NewLink builds a link element.
func NewLink(text, url string) *LinkElement {
	return &LinkElement{Type: InlineLink, Text: text, URL: url}
}
