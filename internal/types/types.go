package types

import (
	"errors"
	"fmt"
	"regexp"
)

// Symbol 定义渲染时使用的显示符号
type Symbol struct {
	Bullet string `yaml:"bullet"`
}

// DefaultSymbol 返回默认符号配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		Bullet: "•",
	}
}

const (
	// DefaultTextLimit is the per-block character limit for section text.
	DefaultTextLimit = 740
	// DefaultHeaderLimit is the character limit for header text.
	DefaultHeaderLimit = 3000
	// DefaultSentencePattern splits paragraphs into sentences when chunking.
	DefaultSentencePattern = `[.!?]+\s+`
	// DefaultMaxBlocks is the number of blocks Slack accepts in one message.
	DefaultMaxBlocks = 50
	// DefaultMaxMessageLength is the recommended upper bound for message text.
	DefaultMaxMessageLength = 4000
)

// RenderConfig 渲染配置
type RenderConfig struct {
	MarkdownSymbol   *Symbol `yaml:"symbol"`
	TextLimit        int     `yaml:"text_limit"`
	HeaderLimit      int     `yaml:"header_limit"`
	SentencePattern  string  `yaml:"sentence_pattern"`
	MaxBlocks        int     `yaml:"max_blocks"`
	MaxMessageLength int     `yaml:"max_message_length"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MarkdownSymbol:   DefaultSymbol(),
		TextLimit:        DefaultTextLimit,
		HeaderLimit:      DefaultHeaderLimit,
		SentencePattern:  DefaultSentencePattern,
		MaxBlocks:        DefaultMaxBlocks,
		MaxMessageLength: DefaultMaxMessageLength,
	}
}

// Clone returns a deep copy so callers can tweak a shared config safely.
func (c *RenderConfig) Clone() *RenderConfig {
	out := *c
	if c.MarkdownSymbol != nil {
		sym := *c.MarkdownSymbol
		out.MarkdownSymbol = &sym
	}
	return &out
}

// Validate checks limits and the sentence pattern.
func (c *RenderConfig) Validate() error {
	var errs []error
	if c.TextLimit <= 0 {
		errs = append(errs, fmt.Errorf("text_limit must be positive, got %d", c.TextLimit))
	}
	if c.HeaderLimit <= 0 {
		errs = append(errs, fmt.Errorf("header_limit must be positive, got %d", c.HeaderLimit))
	}
	if c.MaxBlocks <= 0 {
		errs = append(errs, fmt.Errorf("max_blocks must be positive, got %d", c.MaxBlocks))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("max_message_length must be positive, got %d", c.MaxMessageLength))
	}
	if c.SentencePattern != "" {
		if _, err := regexp.Compile(c.SentencePattern); err != nil {
			errs = append(errs, fmt.Errorf("invalid sentence_pattern: %w", err))
		}
	}
	return errors.Join(errs...)
}
