package converter

import (
	"strings"

	"github.com/riverfjs/slackify-go/internal/inline"
	"github.com/riverfjs/slackify-go/internal/types"
)

// richBuilder folds lines into header, divider and rich_text blocks.
//
// open is the rich_text block still accepting elements; it is appended to
// blocks once a header, divider, new fence or the end of input closes it.
// fence is non-nil while inside a fenced code region.
type richBuilder struct {
	opts   Options
	blocks []types.Block
	open   *types.RichTextBlock
	fence  *types.RichTextPreformatted
}

// RichText converts markdown into header, divider and rich_text blocks.
// Contiguous list items of the same style merge into one list, contiguous
// quote lines into one quote, and paragraphs join the open rich_text block.
func RichText(markdown string, opts Options) []types.Block {
	b := &richBuilder{opts: opts.withDefaults()}
	for _, line := range splitLines(strings.TrimSpace(markdown)) {
		b.line(line)
	}
	b.finish()
	return b.blocks
}

func (b *richBuilder) line(line string) {
	if b.fence != nil {
		if strings.HasPrefix(line, fenceMarker) {
			b.fence = nil
			return
		}
		b.fence.Elements = append(b.fence.Elements, types.NewText(line+"\n", types.TextStyle{}))
		return
	}

	switch kind := Classify(line); kind {
	case LineFence:
		b.close()
		b.fence = types.NewRichTextPreformatted()
		b.open = types.NewRichText(b.fence)
	case LineHeader:
		b.close()
		text := truncate(headerText(line), b.opts.HeaderLimit)
		b.blocks = append(b.blocks, types.NewHeader(orSpace(text)))
	case LineDivider:
		b.close()
		b.blocks = append(b.blocks, types.NewDivider())
	case LineBullet, LineOrdered:
		b.addItem(kind, inline.Tokenize(stripListMarker(line, kind)))
	case LineQuote:
		b.addQuote(inline.Tokenize(stripQuoteMarker(line)))
	case LineBlank:
	default:
		b.addSection(inline.Tokenize(line))
	}
}

func (b *richBuilder) addItem(kind LineKind, elements []types.InlineElement) {
	style := types.ListBullet
	if kind == LineOrdered {
		style = types.ListOrdered
	}
	if len(elements) == 0 {
		elements = []types.InlineElement{types.NewText(" ", types.TextStyle{})}
	}
	item := types.NewRichTextSection(elements...)

	if b.open == nil {
		b.open = types.NewRichText(types.NewRichTextList(style, item))
		return
	}
	if list, ok := b.last().(*types.RichTextList); ok && list.Style == style {
		list.Elements = append(list.Elements, item)
		return
	}
	b.open.Elements = append(b.open.Elements, types.NewRichTextList(style, item))
}

func (b *richBuilder) addQuote(elements []types.InlineElement) {
	elements = withLineBreak(elements)
	if b.open == nil {
		b.open = types.NewRichText(types.NewRichTextQuote(elements...))
		return
	}
	if quote, ok := b.last().(*types.RichTextQuote); ok {
		quote.Elements = append(quote.Elements, elements...)
		return
	}
	b.open.Elements = append(b.open.Elements, types.NewRichTextQuote(elements...))
}

func (b *richBuilder) addSection(elements []types.InlineElement) {
	if len(elements) == 0 {
		return
	}
	section := types.NewRichTextSection(elements...)
	if b.open == nil {
		b.open = types.NewRichText(section)
		return
	}
	b.open.Elements = append(b.open.Elements, section)
}

// last returns the trailing element of the open block, or nil.
func (b *richBuilder) last() types.RichTextElement {
	if b.open == nil || len(b.open.Elements) == 0 {
		return nil
	}
	return b.open.Elements[len(b.open.Elements)-1]
}

// close appends the open block to the output.
func (b *richBuilder) close() {
	if b.open == nil {
		return
	}
	if pre, ok := b.open.Elements[0].(*types.RichTextPreformatted); ok && len(pre.Elements) == 0 {
		pre.Elements = append(pre.Elements, types.NewText(" ", types.TextStyle{}))
	}
	b.blocks = append(b.blocks, b.open)
	b.open = nil
}

func (b *richBuilder) finish() {
	if b.fence != nil {
		b.opts.debug("unterminated code fence", "lines", len(b.fence.Elements))
		b.fence = nil
	}
	b.close()
}

// withLineBreak ends a quote line with "\n". A trailing link gets a separate
// text element so its label stays intact.
func withLineBreak(elements []types.InlineElement) []types.InlineElement {
	if len(elements) == 0 {
		return []types.InlineElement{types.NewText("\n", types.TextStyle{})}
	}
	if text, ok := elements[len(elements)-1].(*types.TextElement); ok {
		text.Text += "\n"
		return elements
	}
	return append(elements, types.NewText("\n", types.TextStyle{}))
}
