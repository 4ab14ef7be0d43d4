package converter

import (
	"strings"

	"github.com/riverfjs/slackify-go/internal/inline"
	"github.com/riverfjs/slackify-go/internal/types"
)

// sectionState is the mode of the section converter between lines.
type sectionState int

const (
	stateText sectionState = iota
	stateList
	stateFence
)

// codeWrap is the fence written around code chunks.
const codeWrap = "```"

// sectionBuilder folds lines into section, header and divider blocks.
type sectionBuilder struct {
	opts   Options
	blocks []types.Block
	state  sectionState
	items  []string // pending list run
	code   []string // pending fenced lines
}

// Sections converts markdown into section, header and divider blocks whose
// text is Slack mrkdwn. Section text never exceeds opts.TextLimit and header
// text never exceeds opts.HeaderLimit.
func Sections(markdown string, opts Options) []types.Block {
	b := &sectionBuilder{opts: opts.withDefaults()}
	for _, line := range splitLines(strings.TrimSpace(markdown)) {
		b.line(line)
	}
	b.finish()
	return b.blocks
}

func (b *sectionBuilder) line(line string) {
	if b.state == stateFence {
		if strings.HasPrefix(line, fenceMarker) {
			b.closeFence()
			return
		}
		b.code = append(b.code, line)
		return
	}

	kind := Classify(line)
	if b.state == stateList && !kind.IsList() {
		// Only the divider flush marks the run verbatim.
		b.flushList(kind == LineDivider)
	}

	switch kind {
	case LineDivider:
		b.blocks = append(b.blocks, types.NewDivider())
	case LineFence:
		b.state = stateFence
		b.code = nil
	case LineHeader:
		text := truncate(headerText(line), b.opts.HeaderLimit)
		b.blocks = append(b.blocks, types.NewHeader(orSpace(text)))
	case LineBullet, LineOrdered:
		b.addItem(line, kind)
	case LineBlank:
	default:
		b.addText(inline.FormatMrkdwn(line))
	}
}

// addItem appends a list item to the current run. When the joined run grows
// past the limit, everything but the newest item is flushed; items are never
// split unless a single item is over the limit by itself.
func (b *sectionBuilder) addItem(line string, kind LineKind) {
	item := inline.FormatMrkdwn(b.opts.Bullet + " " + stripListMarker(line, kind))
	b.state = stateList
	b.items = append(b.items, item)

	if RuneLen(strings.Join(b.items, "\n")) <= b.opts.TextLimit {
		return
	}
	if n := len(b.items); n > 1 {
		b.emit(strings.Join(b.items[:n-1], "\n"), false)
		b.items = []string{b.items[n-1]}
	}
	if RuneLen(b.items[0]) > b.opts.TextLimit {
		for _, chunk := range ChunkText(b.items[0], b.opts.TextLimit, b.opts.Sentence) {
			b.emit(chunk, false)
		}
		b.items = nil
	}
}

func (b *sectionBuilder) flushList(verbatim bool) {
	if len(b.items) > 0 {
		b.emit(strings.Join(b.items, "\n"), verbatim)
	}
	b.items = nil
	b.state = stateText
}

// closeFence joins the pending code lines with single spaces and emits them
// wrapped in a code fence, chunked so the fence fits within the limit.
func (b *sectionBuilder) closeFence() {
	b.state = stateText
	code := strings.Join(b.code, " ")
	b.code = nil
	if strings.TrimSpace(code) == "" {
		return
	}
	limit := b.opts.TextLimit - 2*len(codeWrap)
	if limit < 1 {
		limit = 1
	}
	for _, chunk := range ChunkText(code, limit, b.opts.Sentence) {
		b.emit(codeWrap+chunk+codeWrap, false)
	}
}

func (b *sectionBuilder) addText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	for _, chunk := range ChunkText(text, b.opts.TextLimit, b.opts.Sentence) {
		b.emit(chunk, false)
	}
}

func (b *sectionBuilder) emit(text string, verbatim bool) {
	section := types.NewSection(text)
	section.Text.Verbatim = verbatim
	b.blocks = append(b.blocks, section)
}

func (b *sectionBuilder) finish() {
	switch b.state {
	case stateFence:
		b.opts.debug("unterminated code fence", "lines", len(b.code))
		b.closeFence()
	case stateList:
		b.flushList(false)
	}

	for _, block := range b.blocks {
		if s, ok := block.(*types.SectionBlock); ok {
			s.Text.Text = orSpace(s.Text.Text)
		}
	}
}
