package converter

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/slackify-go/internal/buffer"
)

// MrkdwnWalker 遍历 goldmark AST 并生成 Slack mrkdwn 文本
type MrkdwnWalker struct {
	buf    *buffer.TextBuffer
	source []byte
	bullet string

	// Block-level state
	blockCount int    // 用于段落间距
	listStack  []*int // nil=unordered, *int=ordered(next_number)
	itemStart  int    // 当前 item 标记的起始偏移，用于 task list marker 替换
	itemIndent string

	// Table state
	tableRows   [][]string
	currentRow  []string
	cellStart   int
	inTableCell bool

	// Blockquote state: buffer offsets where each open quote began
	quoteStarts []int
}

// NewMrkdwnWalker 创建新的 MrkdwnWalker
func NewMrkdwnWalker(source []byte, bullet string) *MrkdwnWalker {
	if bullet == "" {
		bullet = "•"
	}
	return &MrkdwnWalker{
		buf:    buffer.New(),
		source: source,
		bullet: bullet,
	}
}

// Walk 遍历 AST 节点
func (w *MrkdwnWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.write(EscapeMrkdwn(string(n.Value)))
		}

	case *ast.CodeSpan:
		if entering {
			w.write("`" + EscapeMrkdwn(codeSpanText(n, w.source)) + "`")
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		// Level 1 = italic, Level 2 = bold
		if n.Level == 2 {
			w.write("*")
		} else {
			w.write("_")
		}

	case *east.Strikethrough:
		w.write("~")

	// --- Links & Images ---
	case *ast.Link:
		w.onLink(string(n.Destination), entering)

	case *ast.Image:
		w.onLink(string(n.Destination), entering)

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
				w.write("<mailto:" + url + "|" + EscapeMrkdwn(url) + ">")
			} else {
				w.write("<" + url + ">")
			}
			return ast.WalkSkipChildren, nil
		}

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			if len(w.listStack) == 0 {
				w.ensureBlockSpacing()
			}
		} else {
			w.endBlock()
		}

	case *ast.TextBlock:
		if !entering {
			w.endBlock()
		}

	case *ast.Heading:
		if entering {
			w.ensureBlockSpacing()
			w.write("*")
		} else {
			w.write("*")
			w.blockCount++
		}

	case *ast.Blockquote:
		if entering {
			w.ensureBlockSpacing()
			w.quoteStarts = append(w.quoteStarts, w.buf.Len())
		} else {
			w.onEndBlockquote()
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else if w.buf.TrailingNewlineCount() == 0 {
			w.write("\n")
		}

	case *east.TaskCheckBox:
		if entering {
			w.onTaskCheckBox(n.IsChecked)
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.ensureBlockSpacing()
			w.write("———")
			w.blockCount++
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		// HTML is not rendered by Slack
		return ast.WalkSkipChildren, nil

	// --- Table ---
	case *east.Table:
		if entering {
			w.ensureBlockSpacing()
			w.tableRows = nil
		} else {
			w.onEndTable()
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.currentRow = nil
		} else {
			w.tableRows = append(w.tableRows, w.currentRow)
			w.currentRow = nil
		}

	case *east.TableCell:
		if entering {
			w.inTableCell = true
			w.cellStart = w.buf.Len()
		} else {
			cell := w.buf.Since(w.cellStart)
			w.buf.Truncate(w.cellStart)
			w.currentRow = append(w.currentRow, cell)
			w.inTableCell = false
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果
func (w *MrkdwnWalker) Result() string {
	return w.buf.String()
}

func (w *MrkdwnWalker) write(s string) {
	w.buf.Write(s)
}

// --- Text handling ---

func (w *MrkdwnWalker) onText(n *ast.Text) {
	text := EscapeMrkdwn(string(n.Segment.Value(w.source)))
	if n.SoftLineBreak() || n.HardLineBreak() {
		if w.inTableCell {
			text += " "
		} else {
			text += "\n"
		}
	}
	w.write(text)
}

func (w *MrkdwnWalker) onLink(dest string, entering bool) {
	// Empty URL links are rendered as plain text
	if dest == "" {
		return
	}
	if entering {
		w.write("<" + dest + "|")
	} else {
		w.write(">")
	}
}

// endBlock closes a paragraph-like block. Inside lists a newline keeps loose
// list paragraphs apart.
func (w *MrkdwnWalker) endBlock() {
	if len(w.listStack) == 0 {
		w.blockCount++
	} else if w.buf.TrailingNewlineCount() == 0 {
		w.write("\n")
	}
}

// --- Code block ---

func (w *MrkdwnWalker) onCodeBlock(n ast.Node) {
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(w.source))
	}
	raw := strings.TrimSuffix(code.String(), "\n")

	w.ensureBlockSpacing()
	w.write("```\n" + EscapeMrkdwn(raw) + "\n```")
	w.blockCount++
}

// --- Blockquote ---

func (w *MrkdwnWalker) onEndBlockquote() {
	if len(w.quoteStarts) == 0 {
		return
	}
	start := w.quoteStarts[len(w.quoteStarts)-1]
	w.quoteStarts = w.quoteStarts[:len(w.quoteStarts)-1]

	content := strings.Trim(w.buf.Since(start), "\n")
	w.buf.Truncate(start)
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			w.write("\n")
		}
		if line == "" {
			w.write(">")
		} else {
			w.write("> " + line)
		}
	}
	w.blockCount++
}

// --- Lists ---

func (w *MrkdwnWalker) onStartList(n *ast.List) {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}
	if n.IsOrdered() {
		start := n.Start
		w.listStack = append(w.listStack, &start)
	} else {
		w.listStack = append(w.listStack, nil)
	}
}

func (w *MrkdwnWalker) onStartItem() {
	depth := len(w.listStack)
	if depth == 0 {
		return
	}
	// 嵌套列表：父项文本后没有换行时，插入换行确保子项独占一行
	if w.buf.Len() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.write("\n")
	}

	w.itemIndent = strings.Repeat("  ", depth-1)
	w.itemStart = w.buf.Len()
	if next := w.listStack[depth-1]; next != nil {
		w.write(fmt.Sprintf("%s%d. ", w.itemIndent, *next))
		*next++
	} else {
		w.write(w.itemIndent + w.bullet + " ")
	}
}

// onTaskCheckBox 将刚写入的 bullet 替换为复选框
func (w *MrkdwnWalker) onTaskCheckBox(checked bool) {
	w.buf.Truncate(w.itemStart)
	symbol := "☐"
	if checked {
		symbol = "☑"
	}
	w.write(w.itemIndent + symbol + " ")
}

func (w *MrkdwnWalker) onEndList() {
	if len(w.listStack) > 0 {
		w.listStack = w.listStack[:len(w.listStack)-1]
	}
	if len(w.listStack) == 0 {
		w.blockCount++
	}
}

// --- Tables ---

func (w *MrkdwnWalker) onEndTable() {
	if len(w.tableRows) > 0 {
		w.write("```\n" + formatTable(w.tableRows) + "\n```")
	}
	w.tableRows = nil
	w.blockCount++
}

func formatTable(rows [][]string) string {
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	colWidths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if n := RuneLen(cell); n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	var lines []string
	for rowIdx, row := range rows {
		cells := make([]string, numCols)
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = cell + strings.Repeat(" ", colWidths[i]-RuneLen(cell))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " | "), " "))

		// Add separator after header
		if rowIdx == 0 && len(rows) > 1 {
			sep := make([]string, numCols)
			for i := range sep {
				sep[i] = strings.Repeat("-", colWidths[i])
			}
			lines = append(lines, strings.Join(sep, "-+-"))
		}
	}
	return strings.Join(lines, "\n")
}

func (w *MrkdwnWalker) ensureBlockSpacing() {
	// Ensure a blank line (\n\n) between blocks, avoiding excess newlines
	if w.blockCount > 0 {
		if needed := 2 - w.buf.TrailingNewlineCount(); needed > 0 {
			w.write(strings.Repeat("\n", needed))
		}
	}
}

// --- Utilities ---

func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
