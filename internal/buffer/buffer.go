package buffer

// TextBuffer accumulates rendered text. Offsets are byte offsets into the
// accumulated string.
type TextBuffer struct {
	data []byte
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		data: make([]byte, 0, 256),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.data = append(tb.data, text...)
}

// Len returns the current byte offset.
func (tb *TextBuffer) Len() int {
	return len(tb.data)
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.data) - 1; i >= 0 && tb.data[i] == '\n'; i-- {
		count++
	}
	return count
}

// Since returns the text written after offset.
func (tb *TextBuffer) Since(offset int) string {
	if offset >= len(tb.data) {
		return ""
	}
	return string(tb.data[offset:])
}

// Truncate discards everything written after offset.
// Used to replace a just-written list bullet or to re-render a quote.
func (tb *TextBuffer) Truncate(offset int) {
	if offset < len(tb.data) {
		tb.data = tb.data[:offset]
	}
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return string(tb.data)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.data = tb.data[:0]
}
