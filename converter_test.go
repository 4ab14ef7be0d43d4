package slackify

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
)

// sectionTexts 返回所有 section 块的文本
func sectionTexts(blocks []Block) []string {
	result := []string{}
	for _, b := range blocks {
		if s, ok := b.(*SectionBlock); ok {
			result = append(result, s.Text.Text)
		}
	}
	return result
}

// TestToBlocks_Basic 测试基础转换
func TestToBlocks_Basic(t *testing.T) {
	blocks := ToBlocks("# Title\n\nSome **bold** text.\n\n---\n\n- one\n- two")
	want := []BlockType{BlockHeader, BlockSection, BlockDivider, BlockSection}
	if len(blocks) != len(want) {
		t.Fatalf("ToBlocks() returned %d blocks, want %d", len(blocks), len(want))
	}
	for i, b := range blocks {
		if b.BlockType() != want[i] {
			t.Errorf("block %d type = %s, want %s", i, b.BlockType(), want[i])
		}
	}
	texts := sectionTexts(blocks)
	if texts[0] != "Some *bold* text." {
		t.Errorf("section text = %q", texts[0])
	}
	if texts[1] != "• one\n• two" {
		t.Errorf("list text = %q", texts[1])
	}
}

// TestToBlocks_WithBullet 测试自定义列表符号
func TestToBlocks_WithBullet(t *testing.T) {
	texts := sectionTexts(ToBlocks("- a\n- b", WithBullet("→")))
	if len(texts) != 1 || texts[0] != "→ a\n→ b" {
		t.Errorf("ToBlocks(WithBullet) = %q", texts)
	}
}

// TestToBlocks_WithTextLimit 测试自定义长度限制
func TestToBlocks_WithTextLimit(t *testing.T) {
	markdown := strings.Repeat("Short sentence here. ", 20)
	blocks := ToBlocks(markdown, WithTextLimit(50))
	if len(blocks) < 2 {
		t.Fatalf("expected paragraph to be chunked, got %d blocks", len(blocks))
	}
	for _, text := range sectionTexts(blocks) {
		if CountText(text) > 50 {
			t.Errorf("section exceeds limit: %d chars", CountText(text))
		}
	}
}

// TestToBlocks_WithSentencePattern 测试自定义句子分隔符
func TestToBlocks_WithSentencePattern(t *testing.T) {
	markdown := "alpha; beta; gamma; delta"
	texts := sectionTexts(ToBlocks(markdown, WithTextLimit(14), WithSentencePattern(`;\s+`)))
	want := []string{"alpha; beta;", "gamma; delta"}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Errorf("chunks = %q, want %q", texts, want)
	}
}

// TestToBlocks_InvalidSentencePattern 无效的句子正则回退到默认值
func TestToBlocks_InvalidSentencePattern(t *testing.T) {
	prev := Logger
	SetLogger(nil)
	defer SetLogger(prev)

	blocks := ToBlocks("One. Two.", WithSentencePattern("[unclosed"))
	if len(blocks) != 1 {
		t.Fatalf("ToBlocks() returned %d blocks, want 1", len(blocks))
	}
}

// TestSetLogger_Restore 恢复之前的日志记录器
func TestSetLogger_Restore(t *testing.T) {
	prev := Logger
	func() {
		SetLogger(nil)
		defer SetLogger(prev)
		if Logger == prev {
			t.Error("SetLogger(nil) should install a discard logger")
		}
	}()
	if Logger != prev {
		t.Error("Logger was not restored")
	}
}

// TestToBlocks_WithBlockIDs 测试 block_id 生成
func TestToBlocks_WithBlockIDs(t *testing.T) {
	blocks := ToBlocks("# a\n---\nb", WithBlockIDs(true))
	seen := map[string]bool{}
	for _, b := range blocks {
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		var decoded struct {
			BlockID string `json:"block_id"`
		}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatal(err)
		}
		if decoded.BlockID == "" {
			t.Errorf("block %s has no block_id", b.BlockType())
		}
		if seen[decoded.BlockID] {
			t.Errorf("duplicate block_id %s", decoded.BlockID)
		}
		seen[decoded.BlockID] = true
	}

	for _, b := range ToBlocks("# a") {
		if b.(*HeaderBlock).BlockID != "" {
			t.Error("block_id should be empty by default")
		}
	}
}

// TestToRichText_Basic 测试 rich_text 转换
func TestToRichText_Basic(t *testing.T) {
	blocks := ToRichText("- a\n- b\n1. c")
	if len(blocks) != 1 {
		t.Fatalf("ToRichText() returned %d blocks, want 1", len(blocks))
	}
	rt, ok := blocks[0].(*RichTextBlock)
	if !ok {
		t.Fatalf("block type = %T, want *RichTextBlock", blocks[0])
	}
	if len(rt.Elements) != 2 {
		t.Fatalf("rich_text has %d elements, want 2", len(rt.Elements))
	}
	if l := rt.Elements[0].(*RichTextList); l.Style != ListBullet || len(l.Elements) != 2 {
		t.Errorf("first list = %s with %d items", l.Style, len(l.Elements))
	}
	if l := rt.Elements[1].(*RichTextList); l.Style != ListOrdered {
		t.Errorf("second list style = %s, want ordered", l.Style)
	}
}

// TestToRichText_HeaderLimit 测试 header 截断
func TestToRichText_HeaderLimit(t *testing.T) {
	blocks := ToRichText("# "+strings.Repeat("x", 200), WithHeaderLimit(150))
	h := blocks[0].(*HeaderBlock)
	if CountText(h.Text.Text) != 150 {
		t.Errorf("header length = %d, want 150", CountText(h.Text.Text))
	}
}

// TestToMrkdwn 测试整篇文档转换为 mrkdwn
func TestToMrkdwn(t *testing.T) {
	got := ToMrkdwn("## Notes\n\n- **done**\n- [link](https://x.io)", WithBullet("-"))
	want := "*Notes*\n\n- *done*\n- <https://x.io|link>"
	if got != want {
		t.Errorf("ToMrkdwn() = %q, want %q", got, want)
	}
}

// TestChunkText 测试导出的分块函数
func TestChunkText(t *testing.T) {
	chunks := ChunkText("First one. Second one. Third one.", 25)
	want := []string{"First one. Second one.", "Third one."}
	if strings.Join(chunks, "|") != strings.Join(want, "|") {
		t.Errorf("ChunkText() = %q, want %q", chunks, want)
	}
}

// TestWithConfig_DoesNotMutate 选项不能修改传入的配置
func TestWithConfig_DoesNotMutate(t *testing.T) {
	cfg := DefaultConfig().Clone()
	cfg.TextLimit = 100
	_ = ToBlocks("text", WithConfig(cfg), WithTextLimit(10), WithBullet("*"))

	if cfg.TextLimit != 100 {
		t.Errorf("TextLimit changed to %d", cfg.TextLimit)
	}
	if cfg.MarkdownSymbol.Bullet != "•" {
		t.Errorf("Bullet changed to %q", cfg.MarkdownSymbol.Bullet)
	}
	if DefaultConfig().TextLimit != 740 {
		t.Errorf("default TextLimit changed to %d", DefaultConfig().TextLimit)
	}
}

// TestConcurrentConversion 并发调用互不影响
func TestConcurrentConversion(t *testing.T) {
	inputs := []string{
		"# one\n- a\n- b",
		"> quote\n> more",
		"```\ncode\n```",
		"plain **text**",
	}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		data, _ := json.Marshal(ToRichText(in))
		want[i] = string(data)
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, in := range inputs {
			wg.Add(1)
			go func(i int, in string) {
				defer wg.Done()
				data, _ := json.Marshal(ToRichText(in, WithBullet("-")))
				if string(data) != want[i] {
					t.Errorf("concurrent result for %q differs", in)
				}
			}(i, in)
		}
	}
	wg.Wait()
}
